package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const whatsAppBaseURL = "https://wa.me/"

// FormatBRL renders an amount as Brazilian reais, e.g. "R$ 1.234,56".
func FormatBRL(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	fixed := amount.Abs().StringFixed(2)

	intPart, frac, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%s", sign, b.String(), frac)
}

// ConfirmationMessage is the text the customer sends along with the payment
// receipt. orderID may be nil.
func ConfirmationMessage(total decimal.Decimal, orderID *uuid.UUID) string {
	id := ""
	if orderID != nil && *orderID != uuid.Nil {
		id = orderID.String()
	}
	return fmt.Sprintf("Olá! Acabei de fazer um pedido #%s no valor de %s. Estou enviando o comprovante do pagamento via Pix.",
		id, FormatBRL(total))
}

func WhatsAppLink(number, message string) string {
	return whatsAppBaseURL + digitsOnly(number) + "?text=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}

// FormatPixPhone renders a 13-digit international number as "+55 21 96842-8374".
func FormatPixPhone(number string) string {
	d := digitsOnly(number)
	if len(d) < 10 {
		return d
	}
	return fmt.Sprintf("+%s %s %s-%s", d[:2], d[2:4], d[4:9], d[9:])
}

// FormatCustomerPhone renders a stored digits-only phone for display.
func FormatCustomerPhone(phone string) string {
	d := digitsOnly(phone)
	switch len(d) {
	case 11:
		return fmt.Sprintf("(%s) %s-%s", d[:2], d[2:7], d[7:])
	case 10:
		return fmt.Sprintf("(%s) %s-%s", d[:2], d[2:6], d[6:])
	default:
		return d
	}
}

type PaymentInstructions struct {
	PixKey      string `json:"pix_key"`
	Amount      string `json:"amount"`
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}

// NewPaymentInstructions builds the PIX and WhatsApp hand-off for a submitted
// order. The PIX key and the WhatsApp contact are the same store number.
func NewPaymentInstructions(storeNumber string, total decimal.Decimal, orderID uuid.UUID) PaymentInstructions {
	msg := ConfirmationMessage(total, &orderID)
	return PaymentInstructions{
		PixKey:      FormatPixPhone(storeNumber),
		Amount:      FormatBRL(total),
		Message:     msg,
		WhatsAppURL: WhatsAppLink(storeNumber, msg),
	}
}
