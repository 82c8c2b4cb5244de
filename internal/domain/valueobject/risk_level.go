package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// RiskLevel – immutable value object
// ---------------------------------------------------------------------------

// RiskLevel classifies a borrower's overall credit risk.
type RiskLevel struct {
	value string
}

const (
	riskLevelLow    = "low"
	riskLevelMedium = "medium"
	riskLevelHigh   = "high"
)

var (
	RiskLevelLow    = RiskLevel{value: riskLevelLow}
	RiskLevelMedium = RiskLevel{value: riskLevelMedium}
	RiskLevelHigh   = RiskLevel{value: riskLevelHigh}
)

var validRiskLevels = map[string]RiskLevel{
	riskLevelLow:    RiskLevelLow,
	riskLevelMedium: RiskLevelMedium,
	riskLevelHigh:   RiskLevelHigh,
}

// NewRiskLevel creates a RiskLevel from a raw string.
func NewRiskLevel(s string) (RiskLevel, error) {
	v, ok := validRiskLevels[s]
	if !ok {
		return RiskLevel{}, fmt.Errorf("invalid risk level: %q", s)
	}
	return v, nil
}

// String returns the string representation of the level.
func (l RiskLevel) String() string { return l.value }

// IsZero returns true if the level has not been initialised.
func (l RiskLevel) IsZero() bool { return l.value == "" }

// Equal returns true when both levels carry the same value.
func (l RiskLevel) Equal(other RiskLevel) bool { return l.value == other.value }

// ---------------------------------------------------------------------------
// InstallmentStatus – immutable value object
// ---------------------------------------------------------------------------

// InstallmentStatus represents the servicing state of a schedule entry. The
// lifecycle beyond "pending" is owned by the external loan-servicing workflow;
// the engine only ever emits pending entries.
type InstallmentStatus struct {
	value string
}

const (
	installmentStatusPending = "pending"
	installmentStatusPaid    = "paid"
	installmentStatusOverdue = "overdue"
	installmentStatusPartial = "partial"
)

var (
	InstallmentStatusPending = InstallmentStatus{value: installmentStatusPending}
	InstallmentStatusPaid    = InstallmentStatus{value: installmentStatusPaid}
	InstallmentStatusOverdue = InstallmentStatus{value: installmentStatusOverdue}
	InstallmentStatusPartial = InstallmentStatus{value: installmentStatusPartial}
)

var validInstallmentStatuses = map[string]InstallmentStatus{
	installmentStatusPending: InstallmentStatusPending,
	installmentStatusPaid:    InstallmentStatusPaid,
	installmentStatusOverdue: InstallmentStatusOverdue,
	installmentStatusPartial: InstallmentStatusPartial,
}

// NewInstallmentStatus creates an InstallmentStatus from a raw string.
func NewInstallmentStatus(s string) (InstallmentStatus, error) {
	v, ok := validInstallmentStatuses[s]
	if !ok {
		return InstallmentStatus{}, fmt.Errorf("invalid installment status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s InstallmentStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s InstallmentStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s InstallmentStatus) Equal(other InstallmentStatus) bool { return s.value == other.value }
