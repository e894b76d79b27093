package component

// Wallet is the money counter shown in the HUD.
type Wallet struct {
	amount int

	OnChange func(amount int)
}

func NewWallet(start int) *Wallet {
	return &Wallet{amount: start}
}

// Increase adds amount. Non-positive amounts are ignored.
func (w *Wallet) Increase(amount int) {
	if w == nil || amount <= 0 {
		return
	}
	w.amount += amount
	if w.OnChange != nil {
		w.OnChange(w.amount)
	}
}

func (w *Wallet) Amount() int {
	if w == nil {
		return 0
	}
	return w.amount
}
