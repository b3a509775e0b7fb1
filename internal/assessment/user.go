package assessment

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// UserInfo identifies the applicant taking the diagnostic.
type UserInfo struct {
	Name  string
	Grade string
	Phone string
	Code  string
}

// Validate checks the fields captured by the application form.
func (u UserInfo) Validate() error {
	var errs []string
	if strings.TrimSpace(u.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(u.Grade) == "" {
		errs = append(errs, "grade is required")
	}
	if strings.TrimSpace(u.Phone) == "" {
		errs = append(errs, "phone is required")
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid applicant info: %s", strings.Join(errs, "; "))
	}
	return nil
}

// NewUniqueCode builds the applicant's tracking code: SGS-<name>-<4 digits>.
func NewUniqueCode(name string) string {
	return fmt.Sprintf("SGS-%s-%d", name, 1000+rand.IntN(9000))
}
