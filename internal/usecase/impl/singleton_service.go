package impl

import (
	"context"
	"log/slog"
	"time"

	"bdgaraj/internal/domain/entity"
	domainerrors "bdgaraj/internal/domain/errors"
	"bdgaraj/internal/domain/repository"
	"bdgaraj/internal/domain/service"
	"bdgaraj/internal/errors"
	"bdgaraj/internal/usecase"
)

// singletonService reuses the resource update path against a fixed id.
type singletonService[D entity.Document, P any] struct {
	resources *resourceService[D, struct{}, P]
	id        string
}

func newSingletonService[D entity.Document, P any](
	repo repository.DocumentRepository[D],
	id string,
	kind string,
	notFound *domainerrors.BaseError,
	logger *slog.Logger,
	now func() time.Time,
) *singletonService[D, P] {
	def := ResourceDefinition[D, struct{}]{Kind: kind, NotFound: notFound}

	return &singletonService[D, P]{
		resources: newResourceService[D, struct{}, P](repo, def, logger, now),
		id:        id,
	}
}

func (srv *singletonService[D, P]) Get(ctx context.Context) (D, error) {
	return srv.resources.Get(ctx, srv.id)
}

func (srv *singletonService[D, P]) Update(ctx context.Context, patch *P) (D, error) {
	return srv.resources.Update(ctx, srv.id, patch)
}

// NewCTASectionService serves the call-to-action singleton.
func NewCTASectionService(repo repository.DocumentRepository[*entity.CTASection], logger *slog.Logger) usecase.CTASectionUsecase {
	return newSingletonService[*entity.CTASection, usecase.CTASectionPatch](
		repo, entity.CTASectionID, "cta section", domainerrors.ErrCTASectionNotFound, logger, time.Now,
	)
}

type contactInfoService struct {
	*singletonService[*entity.ContactInfo, usecase.ContactInfoPatch]

	qr service.QRCodeService
}

// NewContactInfoService serves the contact singleton and its WhatsApp QR code.
func NewContactInfoService(
	repo repository.DocumentRepository[*entity.ContactInfo],
	qr service.QRCodeService,
	logger *slog.Logger,
) usecase.ContactInfoUsecase {
	return &contactInfoService{
		singletonService: newSingletonService[*entity.ContactInfo, usecase.ContactInfoPatch](
			repo, entity.ContactInfoID, "contact info", domainerrors.ErrContactInfoNotFound, logger, time.Now,
		),
		qr: qr,
	}
}

// WhatsAppQR falls back to the main phone when no WhatsApp number is set.
func (srv *contactInfoService) WhatsAppQR(ctx context.Context) ([]byte, error) {
	info, err := srv.Get(ctx)
	if err != nil {
		return nil, err
	}

	number := info.WhatsApp
	if number == "" {
		number = info.Phone
	}
	if number == "" {
		return nil, errors.Wrap(domainerrors.ErrContactInfoNotFound, "no whatsapp number configured")
	}

	png, err := srv.qr.GenerateWhatsAppQR(number)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}
