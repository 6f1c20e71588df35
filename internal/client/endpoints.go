package client

// Op names one server operation. The string doubles as the config key for
// endpoint overrides.
type Op string

const (
	OpUpdateSectionTitle       Op = "update_section_title"
	OpUpdateSectionDescription Op = "update_section_description"
	OpUpdateSectionPosition    Op = "update_section_position"
	OpRemoveItemFromSection    Op = "remove_item_from_section"
	OpDeleteSection            Op = "delete_section"
	OpAssociateItem            Op = "associate_item"
	OpSearchItems              Op = "item_picker_search"
	OpLoadSections             Op = "baglist_sections"
	OpEditor                   Op = "editor"
)

// DefaultEndpoints are the server paths each operation is mounted on.
func DefaultEndpoints() map[Op]string {
	return map[Op]string{
		OpUpdateSectionTitle:       "/htmx/update-section-title/",
		OpUpdateSectionDescription: "/htmx/update-section-description/",
		OpUpdateSectionPosition:    "/htmx/update-section-position/",
		OpRemoveItemFromSection:    "/htmx/remove-item-from-section/",
		OpDeleteSection:            "/htmx/delete-section/",
		OpAssociateItem:            "/htmx/associate-item/",
		OpSearchItems:              "/htmx/item-picker-search/",
		OpLoadSections:             "/htmx/baglist-sections/",
		OpEditor:                   "/htmx/editor/",
	}
}

// fallback messages logged when a failed response carries no error text.
var fallbackErrors = map[Op]string{
	OpUpdateSectionTitle:       "error saving section title",
	OpUpdateSectionDescription: "error saving section description",
	OpUpdateSectionPosition:    "error saving section position",
	OpRemoveItemFromSection:    "error removing item from section",
	OpDeleteSection:            "error deleting section",
	OpAssociateItem:            "error associating item",
}

func fallbackError(op Op) string {
	if s, ok := fallbackErrors[op]; ok {
		return s
	}
	return "request failed"
}
