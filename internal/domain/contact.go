package domain

// ContactMessage - сообщение с формы обратной связи
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// MailMessage - письмо для почтового транспорта (HTML + plain text)
type MailMessage struct {
	To       []string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
}
