package models

type RegisterRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=50"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Role     UserRole `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateEntryRequest struct {
	Song   string `json:"song" binding:"required,max=80"`
	Artist string `json:"artist" binding:"required,max=80"`
}

type EntryListParams struct {
	Artist    string `form:"artist"`
	Song      string `form:"song"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=100"`
	SortBy    string `form:"sort_by,default=id"`
	SortOrder string `form:"sort_order,default=asc"`
}

// ChartFile is the layout of one scraped chart JSON file.
type ChartFile struct {
	Data []ChartFileEntry `json:"data"`
}

type ChartFileEntry struct {
	Song   string `json:"song" validate:"max=80"`
	Artist string `json:"artist" validate:"max=80"`
}

// ImportSummary reports what happened across one import run.
type ImportSummary struct {
	Files      int `json:"files"`
	Inserted   int `json:"inserted"`
	Duplicates int `json:"duplicates"`
	Invalid    int `json:"invalid"`
	Failed     int `json:"failed"`
}
