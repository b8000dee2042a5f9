package types

type VendorSignupRequest struct {
	BusinessName string `json:"business_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	Phone        string `json:"phone"`
	Description  string `json:"description"`
}

type UpdateVendorRequest struct {
	BusinessName string                `json:"business_name"`
	Phone        string                `json:"phone"`
	Description  string                `json:"description"`
	LogoURL      string                `json:"logo_url"`
	Address      *VendorAddressPayload `json:"address"`
}

// VendorAddressPayload Id > 0 走更新，否则新建
type VendorAddressPayload struct {
	Id      int64  `json:"id"`
	Line1   string `json:"line1" binding:"required"`
	Line2   string `json:"line2"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country" binding:"required"`
}

type VendorResponse struct {
	ID           int64  `json:"id"`
	BusinessName string `json:"business_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Description  string `json:"description"`
	LogoURL      string `json:"logo_url"`
}
