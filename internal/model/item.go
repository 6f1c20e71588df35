package model

// BagList is the top-level list a user edits. Only its identity is needed
// client-side; sections are loaded per bag list.
type BagList struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Section is a named, ordered grouping of items within a BagList
// (a "sub-bag-list"). IDs are opaque and assigned by the server.
type Section struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Position    string `json:"position"`
	Items       []Item `json:"items"`
}

// Item is an entry that can be associated with zero or more sections.
type Item struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Association links a section and an item. Creating or destroying one
// never creates or deletes either entity.
type Association struct {
	SectionID string `json:"section_id"`
	ItemID    string `json:"item_id"`
}
