package domain

// PaymentOrder - данные заказа для платёжной функции
type PaymentOrder struct {
	OrderID        string  `json:"order_id"`
	ReservationID  int64   `json:"reservation_id"`
	Code           string  `json:"reservation_code"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	Description    string  `json:"description"`
	InstallmentCnt int     `json:"installment"`
}

// PaymentCard - данные карты; не логируются и не сохраняются
type PaymentCard struct {
	HolderName  string `json:"card_holder_name"`
	Number      string `json:"card_number"`
	ExpireMonth string `json:"expire_month"`
	ExpireYear  string `json:"expire_year"`
	CVC         string `json:"cvc"`
}

// PaymentUser - плательщик
type PaymentUser struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	IP      string `json:"ip,omitempty"`
	Address string `json:"address,omitempty"`
}

// PaymentRedirects - адреса возврата после оплаты
type PaymentRedirects struct {
	SuccessURL string `json:"success_url"`
	FailURL    string `json:"fail_url"`
}

// PaymentRequest - тело вызова функции payment-process
type PaymentRequest struct {
	Order     PaymentOrder     `json:"order"`
	Card      PaymentCard      `json:"card"`
	User      PaymentUser      `json:"user"`
	Redirects PaymentRedirects `json:"redirect_urls"`
}

// PaymentResult - ответ функции: куда и с какими полями отправить форму
type PaymentResult struct {
	RedirectURL string            `json:"redirect_url"`
	FormFields  map[string]string `json:"form_fields"`
}
