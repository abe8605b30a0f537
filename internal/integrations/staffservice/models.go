package staffservice

// Professional модель профессионала из StaffService
type Professional struct {
	ID        int64  `json:"id"`
	CompanyID int64  `json:"company_id"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
}

// Service модель услуги из каталога StaffService
type Service struct {
	ID              int64   `json:"id"`
	CompanyID       int64   `json:"company_id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	Active          bool    `json:"active"`
}

// ErrorResponse модель ошибки от StaffService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
