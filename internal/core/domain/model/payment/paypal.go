package payment

// WalletDirectory maps account emails to passwords. It replaces the global
// account database of the wallet provider with an explicitly passed lookup,
// constructed at composition time.
type WalletDirectory map[string]string

// Matches reports whether the credential pair names a known account.
func (d WalletDirectory) Matches(email, password string) bool {
	if email == "" || password == "" {
		return false
	}
	stored, ok := d[email]
	return ok && stored == password
}

// PayPalMethod charges a wallet account. The model tracks no balance for
// wallets: a valid credential pair always settles the charge.
type PayPalMethod struct {
	email     string
	password  string
	directory WalletDirectory
}

// NewPayPalMethod creates a wallet payment method checked against the given
// directory.
func NewPayPalMethod(email, password string, directory WalletDirectory) *PayPalMethod {
	return &PayPalMethod{
		email:     email,
		password:  password,
		directory: directory,
	}
}

// IsValid reports whether the credential pair matches a directory entry.
func (m *PayPalMethod) IsValid() bool {
	return m.directory.Matches(m.email, m.password)
}

// Pay settles the charge once the credentials validate.
// Signals ErrMethodNotValid when called while invalid.
func (m *PayPalMethod) Pay(_ float64) (bool, error) {
	if !m.IsValid() {
		return false, ErrMethodNotValid
	}
	return true, nil
}
