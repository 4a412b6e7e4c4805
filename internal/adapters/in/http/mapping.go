package http

import (
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toPayload(r servers.AdvanceJobRequest) (job.Payload, error) {
	switch r.Event {
	case servers.AdvanceJobRequestEventPickup:
		return job.PickupPayload{}, nil
	case servers.AdvanceJobRequestEventDepart:
		return job.DepartPayload{}, nil
	case servers.AdvanceJobRequestEventFail:
		return job.FailPayload{Reason: deref(r.Reason)}, nil
	case servers.AdvanceJobRequestEventComplete:
		payload := job.CompletePayload{WaiveProof: r.WaiveProof != nil && *r.WaiveProof}
		if r.Proof != nil {
			proof, err := toProof(*r.Proof)
			if err != nil {
				return nil, err
			}
			payload.Proof = &proof
		}
		return payload, nil
	default:
		return nil, badRequest("unknown event " + string(r.Event))
	}
}

func toProof(p servers.ProofOfDelivery) (job.ProofOfDelivery, error) {
	return job.NewProofOfDelivery(deref(p.ImageRef), deref(p.SignatureRef), deref(p.Notes))
}

func toPosition(r servers.UpdateProgressRequest) (*kernel.GeoPoint, error) {
	if r.Latitude == nil && r.Longitude == nil {
		return nil, nil
	}
	if r.Latitude == nil || r.Longitude == nil {
		return nil, badRequest("latitude and longitude must be sent together")
	}
	p, err := kernel.NewGeoPoint(*r.Latitude, *r.Longitude)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// toKernelUUID rejects the nil UUID, which the document's uuid format lets through.
func toKernelUUID(id openapi_types.UUID, name string) (kernel.UUID, error) {
	parsed, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, badRequest(name + " must not be the nil UUID")
	}
	return parsed, nil
}

func uuidPtr(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	v := id.Bytes()
	return &v
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func newProof(imageRef, signatureRef, notes string) *servers.ProofOfDelivery {
	if imageRef == "" && signatureRef == "" && notes == "" {
		return nil
	}
	return &servers.ProofOfDelivery{
		ImageRef:     optional(imageRef),
		SignatureRef: optional(signatureRef),
		Notes:        optional(notes),
	}
}

func newJob(j *job.Job) servers.Job {
	resp := servers.Job{
		Id:                   j.ID().Bytes(),
		OrderId:              j.OrderID().Bytes(),
		AgentId:              uuidPtr(j.AgentID()),
		Status:               servers.JobStatus(j.Status().String()),
		IsAvailable:          j.IsAvailable(),
		AvailableSince:       j.AvailableSince(),
		AssignedAt:           j.AssignedAt(),
		PickedUpAt:           j.PickedUpAt(),
		DeliveredAt:          j.DeliveredAt(),
		ExpectedDeliveryTime: j.ExpectedDeliveryTime(),
		ActualDeliveryTime:   j.ActualDeliveryTime(),
		DistanceKm:           j.DistanceKm(),
		FailureReason:        optional(j.FailureReason()),
		ProgressPercent:      j.ProgressPercent(),
		Version:              j.Version(),
	}

	if p := j.Proof(); p != nil {
		resp.Proof = newProof(p.ImageRef(), p.SignatureRef(), p.Notes())
	}
	if pos := j.LastPosition(); pos != nil {
		lat, lon := pos.Latitude(), pos.Longitude()
		resp.Latitude, resp.Longitude = &lat, &lon
	}

	return resp
}

func newJobFromView(v queries.JobView) servers.Job {
	return servers.Job{
		Id:                   v.ID.Bytes(),
		OrderId:              v.OrderID.Bytes(),
		AgentId:              uuidPtr(v.AgentID),
		Status:               servers.JobStatus(v.Status.String()),
		IsAvailable:          v.IsAvailable,
		AvailableSince:       v.AvailableSince,
		AssignedAt:           v.AssignedAt,
		PickedUpAt:           v.PickedUpAt,
		DeliveredAt:          v.DeliveredAt,
		ExpectedDeliveryTime: v.ExpectedDeliveryTime,
		ActualDeliveryTime:   v.ActualDeliveryTime,
		DistanceKm:           v.DistanceKm,
		Proof:                newProof(v.PodImageRef, v.SignatureRef, v.DeliveryNotes),
		FailureReason:        optional(v.FailureReason),
		ProgressPercent:      v.ProgressPercent,
		Latitude:             v.LastLatitude,
		Longitude:            v.LastLongitude,
		Version:              v.Version,
	}
}

func newJobsFromViews(views []queries.JobView) []servers.Job {
	resp := make([]servers.Job, len(views))
	for i, v := range views {
		resp[i] = newJobFromView(v)
	}
	return resp
}

func newAgentEarnings(r queries.AgentEarningsResponse) servers.AgentEarnings {
	entries := make([]servers.EarningEntry, len(r.Entries))
	for i, e := range r.Entries {
		entries[i] = servers.EarningEntry{
			Id:       e.ID.Bytes(),
			JobId:    e.JobID.Bytes(),
			Amount:   e.Amount,
			EarnedAt: e.EarnedAt,
		}
	}

	return servers.AgentEarnings{
		AgentId: r.AgentID.Bytes(),
		From:    r.From,
		To:      r.To,
		Total:   r.Total,
		Entries: entries,
	}
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
