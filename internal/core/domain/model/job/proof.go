package job

import (
	"errors"
	"strings"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrProofOfDeliveryIsNotConstructed = errors.New("ProofOfDelivery must be created via NewProofOfDelivery")

// ProofOfDelivery holds references to artifacts stored elsewhere (photo, signature)
// and free-form notes. At least one artifact reference is required.
type ProofOfDelivery struct {
	imageRef     string
	signatureRef string
	notes        string
	guard        guard.ConstructorGuard
}

func NewProofOfDelivery(imageRef, signatureRef, notes string) (ProofOfDelivery, error) {
	imageRef = strings.TrimSpace(imageRef)
	signatureRef = strings.TrimSpace(signatureRef)
	if imageRef == "" && signatureRef == "" {
		return ProofOfDelivery{}, errs.NewValueIsRequiredError("imageRef or signatureRef")
	}

	return ProofOfDelivery{
		imageRef:     imageRef,
		signatureRef: signatureRef,
		notes:        strings.TrimSpace(notes),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (p ProofOfDelivery) Validate() error {
	return p.guard.Validate(ErrProofOfDeliveryIsNotConstructed)
}

func (p ProofOfDelivery) ImageRef() string     { return p.imageRef }
func (p ProofOfDelivery) SignatureRef() string { return p.signatureRef }
func (p ProofOfDelivery) Notes() string        { return p.notes }
