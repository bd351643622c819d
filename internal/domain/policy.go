package domain

import "time"

// TenantPolicy represents the per-tenant booking policy consumed by the
// availability engine: minimum notice, booking horizon and slot step.
// The policy is owned by the tenant-configuration subsystem; this service
// only reads it.
type TenantPolicy struct {
	TenantID            int64
	LeadTimeHours       int
	MaxDaysInAdvance    int // 0 = unlimited
	SlotIntervalMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultTenantPolicy returns the policy applied when a tenant has no
// stored configuration.
func DefaultTenantPolicy(tenantID int64) *TenantPolicy {
	return &TenantPolicy{
		TenantID:            tenantID,
		LeadTimeHours:       DefaultLeadTimeHours,
		MaxDaysInAdvance:    DefaultMaxDaysInAdvance,
		SlotIntervalMinutes: DefaultSlotIntervalMinutes,
	}
}

// HasBookingHorizon returns true if there is a limit on how far in advance
// slots may be requested.
func (p *TenantPolicy) HasBookingHorizon() bool {
	return p.MaxDaysInAdvance > 0
}

// LeadTime returns the minimum notice as a duration.
func (p *TenantPolicy) LeadTime() time.Duration {
	return time.Duration(p.LeadTimeHours) * time.Hour
}
