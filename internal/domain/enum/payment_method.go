package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMethod represents how the customer pays at checkout
type PaymentMethod int

const (
	PaymentMethodCash     PaymentMethod = 0
	PaymentMethodCard     PaymentMethod = 1
	PaymentMethodTransfer PaymentMethod = 2
	PaymentMethodEWallet  PaymentMethod = 3
)

func (m PaymentMethod) String() string {
	names := [...]string{"cash", "card", "transfer", "e_wallet"}
	if int(m) < 0 || int(m) >= len(names) {
		return "cash"
	}
	return names[m]
}

// Label returns the Vietnamese receipt label for the method.
func (m PaymentMethod) Label() string {
	labels := [...]string{"Tiền mặt", "Thẻ", "Chuyển khoản", "Ví điện tử"}
	if int(m) < 0 || int(m) >= len(labels) {
		return labels[0]
	}
	return labels[m]
}

// ParsePaymentMethod maps a wire name to its method; unknown names fall back
// to cash.
func ParsePaymentMethod(s string) PaymentMethod {
	switch s {
	case "card":
		return PaymentMethodCard
	case "transfer":
		return PaymentMethodTransfer
	case "e_wallet":
		return PaymentMethodEWallet
	}
	return PaymentMethodCash
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	switch str {
	case "card":
		*m = PaymentMethodCard
	case "transfer":
		*m = PaymentMethodTransfer
	case "e_wallet":
		*m = PaymentMethodEWallet
	default:
		*m = PaymentMethodCash
	}
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentMethodCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMethod(v)
	case int:
		*m = PaymentMethod(v)
	}
	return nil
}
