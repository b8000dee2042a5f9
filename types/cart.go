package types

// CartItem 购物车行
type CartItem struct {
	Id       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"` // 分
	Quantity int64  `json:"quantity"`
	Image    string `json:"image"`
}

type AddCartItemRequest struct {
	Id       int64  `json:"id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Price    int64  `json:"price" binding:"min=0"`
	Quantity int64  `json:"quantity" binding:"required,min=1"`
	Image    string `json:"image"`
}

type UpdateCartQuantityRequest struct {
	Id       int64 `json:"id" binding:"required"`
	Quantity int64 `json:"quantity" binding:"required,min=1"`
}

// CartSnapshot 不可变快照，每次变更整体替换
type CartSnapshot struct {
	Items []CartItem `json:"items"`
	Total int64      `json:"total"`
	Count int64      `json:"count"`
}

type WishlistRequest struct {
	ProductId int64 `json:"product_id" binding:"required"`
}
