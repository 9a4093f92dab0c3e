package request

// SubmitCheckoutRequest binds from JSON on the API and from the urlencoded
// form on the HTML page. The address itself is checked by the checkout domain
// so that a bad address keeps the form open instead of failing the bind.
type SubmitCheckoutRequest struct {
	Email string `json:"email" form:"email" binding:"max=320"`
}
