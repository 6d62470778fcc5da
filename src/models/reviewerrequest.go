package models

type RequestStatus string

const (
	// RequestStatusNone is never stored; it is the status reported when a
	// student has no request on file.
	RequestStatusNone RequestStatus = "none"

	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusDenied   RequestStatus = "denied"
)

// Requests only ever move pending -> approved or pending -> denied.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	return s == RequestStatusPending &&
		(next == RequestStatusApproved || next == RequestStatusDenied)
}

type ReviewerRequest struct {
	ID              int           `db:"id"`
	StudentUsername string        `db:"student_username"`
	Status          RequestStatus `db:"status"`
}
