package models

// Photo is one entry of the gallery grid.
// Bundled photos get ids 1..N in display order; photos added from the page get a
// millisecond clock reading picked by the caller.
type Photo struct {
	ID      int64  `json:"id"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// AddPhotoRequest is the body of the prompt-style "add photo" action
type AddPhotoRequest struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}
