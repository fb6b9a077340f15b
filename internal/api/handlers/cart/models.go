package cart

// AddItemRequest HTTP request model для добавления товара
type AddItemRequest struct {
	ProductID int64 `json:"productId"`
}

// UpdateItemRequest HTTP request model для изменения количества
type UpdateItemRequest struct {
	Delta int `json:"delta"`
}
