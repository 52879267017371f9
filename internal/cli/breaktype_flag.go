package cli

import (
	"fmt"

	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/spf13/pflag"
)

// breakTypeValue is a pflag.Value that validates break types at parse time.
type breakTypeValue domain.BreakType

var _ pflag.Value = (*breakTypeValue)(nil)

func newBreakTypeValue(def domain.BreakType) *breakTypeValue {
	v := breakTypeValue(def)
	return &v
}

func (v *breakTypeValue) String() string {
	return string(*v)
}

func (v *breakTypeValue) Set(s string) error {
	if !domain.ValidBreakTypes[s] {
		return fmt.Errorf("invalid break type %q (lunch, coffee or general)", s)
	}
	*v = breakTypeValue(s)
	return nil
}

func (v *breakTypeValue) Type() string {
	return "breakType"
}

func (v *breakTypeValue) BreakType() domain.BreakType {
	return domain.BreakType(*v)
}
