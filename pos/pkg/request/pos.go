package request

type AddCartItem struct {
	ProductId int64 `validate:"required,gt=0" json:"productId"`
	Quantity  int32 `validate:"gte=1"         json:"quantity"`
}

// UpdateCartItem carries the new absolute quantity. Zero or negative means
// the line is removed.
type UpdateCartItem struct {
	Quantity int32 `json:"quantity"`
}

type ConfirmSale struct {
	DocumentId      string `validate:"omitempty,numeric" json:"documentId"`
	BuyerName       string `json:"buyerName"`
	AcceptAnonymous bool   `json:"acceptAnonymous"`
}
