package payment

import (
	"fmt"
	"regexp"
	"time"
)

var cardNumberPattern = regexp.MustCompile(`^\d{12,19}$`)
var cvvPattern = regexp.MustCompile(`^\d{3,4}$`)

// CreditCard is the card instrument backing a CreditCardMethod. It reports
// its own validity (number format, cvv format, expiry) and tracks the
// remaining balance debited by successful charges.
type CreditCard struct {
	number     string
	expiration time.Time
	cvv        string
	balance    float64
}

// NewCreditCard creates a card instrument with an opening balance.
// No validation happens here: an expired or malformed card is constructible
// and simply reports itself invalid.
func NewCreditCard(number string, expiration time.Time, cvv string, balance float64) *CreditCard {
	return &CreditCard{
		number:     number,
		expiration: expiration,
		cvv:        cvv,
		balance:    balance,
	}
}

// IsValid reports whether the card can be charged: well-formed number and
// cvv, and not expired.
func (c *CreditCard) IsValid() bool {
	return cardNumberPattern.MatchString(c.number) &&
		cvvPattern.MatchString(c.cvv) &&
		c.expiration.After(time.Now())
}

// Balance returns the remaining balance.
func (c *CreditCard) Balance() float64 {
	return c.balance
}

// CreditCardMethod charges a credit card. The charge debits the card's
// balance; a charge the balance cannot cover signals ErrCardLimitExceeded
// and leaves the balance untouched.
type CreditCardMethod struct {
	card *CreditCard
}

// NewCreditCardMethod creates a payment method over the given card.
// A nil card yields a method that is never valid.
func NewCreditCardMethod(card *CreditCard) *CreditCardMethod {
	return &CreditCardMethod{card: card}
}

// IsValid reports whether a card is present and itself valid.
func (m *CreditCardMethod) IsValid() bool {
	return m.card != nil && m.card.IsValid()
}

// Pay debits amount from the card balance.
// Signals ErrMethodNotValid when called while invalid, and
// ErrCardLimitExceeded when the balance cannot cover the amount.
func (m *CreditCardMethod) Pay(amount float64) (bool, error) {
	if !m.IsValid() {
		return false, ErrMethodNotValid
	}

	remaining := m.card.balance - amount
	if remaining < 0 {
		return false, fmt.Errorf("%w: balance %g cannot cover %g", ErrCardLimitExceeded, m.card.balance, amount)
	}

	m.card.balance = remaining
	return true, nil
}
