package dto

type PublicationRequest struct {
	Title      string  `json:"title" binding:"required,max=120"`
	Address    *string `json:"address"`
	Zone       *string `json:"zone"`
	Slots      int     `json:"slots" binding:"required,min=1"`
	EventDate  string  `json:"event_date" binding:"required,datetime=2006-01-02"`
	EventTime  string  `json:"event_time" binding:"required,datetime=15:04"`
	ActivityID string  `json:"activity_id" binding:"required,uuid"`
}

type PublicationUpdateRequest struct {
	Title     string  `json:"title" binding:"omitempty,max=120"`
	Address   *string `json:"address"`
	Zone      *string `json:"zone"`
	Slots     int     `json:"slots" binding:"omitempty,min=1"`
	EventDate string  `json:"event_date" binding:"omitempty,datetime=2006-01-02"`
	EventTime string  `json:"event_time" binding:"omitempty,datetime=15:04"`
}
