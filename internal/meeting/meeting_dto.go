package meeting

type CreateMeetingRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	Date         string   `json:"date" binding:"required,datetime=2006-01-02"`
	TimeStart    string   `json:"time_start" binding:"required"`
	TimeEnd      string   `json:"time_end"`
	AllEmployees bool     `json:"all_employees"`
	Invitees     []string `json:"invitees" binding:"omitempty,dive,email"`
}

type UpdateMeetingRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Date         string   `json:"date" binding:"omitempty,datetime=2006-01-02"`
	TimeStart    string   `json:"time_start"`
	TimeEnd      string   `json:"time_end"`
	AllEmployees *bool    `json:"all_employees"`
	Invitees     []string `json:"invitees" binding:"omitempty,dive,email"`
}

type MeetingResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Date         string   `json:"date"`
	TimeStart    string   `json:"time_start"`
	TimeEnd      string   `json:"time_end,omitempty"`
	AllEmployees bool     `json:"all_employees"`
	Invitees     []string `json:"invitees"`
	CreatedBy    string   `json:"created_by,omitempty"`
}
