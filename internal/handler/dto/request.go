package dto

type SignupRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LocationRequest struct {
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	ZipCode string `json:"zip_code" binding:"required"`
}

type ContactRequest struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
}

type CreateEventRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Date        string          `json:"date" binding:"required"`
	Time        string          `json:"time" binding:"required"`
	Location    LocationRequest `json:"location" binding:"required"`
	Image       string          `json:"image"`
	Capacity    int             `json:"capacity" binding:"required,gt=0"`
	Price       float64         `json:"price"`
	Tags        []string        `json:"tags"`
	Featured    bool            `json:"featured"`
	Contact     *ContactRequest `json:"contact_info"`
}

type UpdateEventRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Date        *string          `json:"date"`
	Time        *string          `json:"time"`
	Location    *LocationRequest `json:"location"`
	Image       *string          `json:"image"`
	Capacity    *int             `json:"capacity"`
	Price       *float64         `json:"price"`
	Tags        []string         `json:"tags"`
	Status      *string          `json:"status"`
	Featured    *bool            `json:"featured"`
	Contact     *ContactRequest  `json:"contact_info"`
}

type UpdateUserRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Role       *string `json:"role"`
	IsVerified *bool   `json:"is_verified"`
}
