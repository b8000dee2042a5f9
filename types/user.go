package types

// AddressPayload 地址；Id > 0 表示更新现有记录，否则新建
type AddressPayload struct {
	Id       int64  `json:"id"`
	FullName string `json:"full_name"`
	Line1    string `json:"line1" binding:"required"`
	Line2    string `json:"line2"`
	City     string `json:"city" binding:"required"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Country  string `json:"country" binding:"required"`
	Phone    string `json:"phone"`
}

type UpdateProfileRequest struct {
	Name    string          `json:"name"`
	Address *AddressPayload `json:"address"`
}

type UserResponse struct {
	ID        int64            `json:"id"`
	Email     string           `json:"email"`
	Name      string           `json:"name"`
	Role      string           `json:"role"`
	IsGuest   bool             `json:"is_guest"`
	Addresses []AddressPayload `json:"addresses,omitempty"`
}
