package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"adresses/config"
	deliverycontext "adresses/internal/delivery/context"
	"adresses/internal/domain/constants"
	"adresses/internal/domain/entity"
	domainerrors "adresses/internal/domain/errors"
	"adresses/internal/domain/repository"
	"adresses/internal/domain/service"
	"adresses/internal/errors"
	"adresses/internal/usecase"
	"adresses/internal/util"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	CommentRepo repository.CommentRepository
	RatingRepo  repository.RatingRepository
	ObjectStore service.ObjectStore
	Publisher   service.EventPublisher
	QRCode      service.QRCodeService
	Metrics     service.MetricsRecorder
	Config      *config.Config
	Logger      *slog.Logger
}

type addressService struct {
	txManager     repository.TransactionManager
	addressRepo   repository.AddressRepository
	commentRepo   repository.CommentRepository
	ratingRepo    repository.RatingRepository
	objectStore   service.ObjectStore
	publisher     service.EventPublisher
	qrCode        service.QRCodeService
	metrics       service.MetricsRecorder
	maxUploadSize int64
	logger        *slog.Logger
	now           func() time.Time
}

// NewAddressService creates a new address service instance
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	var maxUploadSize int64
	if params.Config != nil && params.Config.Storage != nil {
		maxUploadSize = params.Config.Storage.MaxUploadSize
	}

	return &addressService{
		txManager:     params.TxManager,
		addressRepo:   params.AddressRepo,
		commentRepo:   params.CommentRepo,
		ratingRepo:    params.RatingRepo,
		objectStore:   params.ObjectStore,
		publisher:     params.Publisher,
		qrCode:        params.QRCode,
		metrics:       params.Metrics,
		maxUploadSize: maxUploadSize,
		logger:        params.Logger,
		now:           time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateAddress validates the form, uploads the optional photo and writes the record.
func (s *addressService) CreateAddress(ctx context.Context, owner *entity.Identity, input *usecase.CreateAddressInput) (*entity.Address, error) {
	if owner == nil {
		return nil, domainerrors.ErrNotSignedIn
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.ErrTitleRequired
	}
	if input.Location == nil {
		return nil, domainerrors.ErrLocationRequired
	}
	if !input.Location.Valid() {
		return nil, domainerrors.ErrLocationOutOfRange
	}
	if err := s.checkImageSize(input.Photo); err != nil {
		return nil, err
	}

	address := &entity.Address{
		ID:          s.addressRepo.NextID(ctx),
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		IsPublic:    input.IsPublic,
		Location:    *input.Location,
		OwnerUID:    owner.UID,
		OwnerName:   owner.Name(),
		Images:      []string{},
	}

	var photoKey string
	if !input.Photo.Empty() {
		photoKey = s.addressImageKey(address.ID, input.Photo)
		if err := s.objectStore.Put(ctx, photoKey, input.Photo.Data, input.Photo.ContentType); err != nil {
			s.log(ctx).Error("Failed to upload creation photo", slog.String("key", photoKey), slog.Any("error", err))

			return nil, domainerrors.ErrCreateAddressFailed.WithDetails(err.Error())
		}
		address.Images = append(address.Images, s.objectStore.URL(photoKey))
	}

	if err := s.addressRepo.CreateAddress(ctx, address); err != nil {
		if photoKey != "" {
			s.removeObject(ctx, photoKey, "create_rollback")
		}

		return nil, domainerrors.ErrCreateAddressFailed.WithDetails(err.Error())
	}

	s.log(ctx).Info("Address created",
		slog.String("address_id", address.ID),
		slog.Bool("is_public", address.IsPublic),
		slog.Int("images", len(address.Images)),
	)
	s.publish(ctx, entity.AddressCreated, owner.UID, address, nil)

	return address, nil
}

// GetAddress loads the address with its comments and rating summary.
func (s *addressService) GetAddress(ctx context.Context, viewer *entity.Identity, addressID string) (*entity.AddressDetail, error) {
	address, err := s.readableAddress(ctx, viewer, addressID)
	if err != nil {
		return nil, err
	}

	return s.loadDetail(ctx, viewer, address)
}

func (s *addressService) loadDetail(ctx context.Context, viewer *entity.Identity, address *entity.Address) (*entity.AddressDetail, error) {
	var (
		comments []*entity.Comment
		ratings  []*entity.Rating
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		comments, err = s.commentRepo.FindCommentsByAddress(gctx, address.ID)

		return err
	})
	g.Go(func() error {
		var err error
		ratings, err = s.ratingRepo.FindRatingsByAddress(gctx, address.ID)

		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domainerrors.ErrLoadAddressFailed.WithDetails(err.Error())
	}

	return &entity.AddressDetail{
		Address:  address,
		Comments: comments,
		Rating:   entity.AggregateRatings(ratings, uidOf(viewer)),
	}, nil
}

// ListMyAddresses returns the owner's addresses, newest first.
func (s *addressService) ListMyAddresses(ctx context.Context, owner *entity.Identity) ([]*entity.Address, error) {
	if owner == nil {
		return nil, domainerrors.ErrNotSignedIn
	}

	addresses, err := s.addressRepo.FindAddressesByOwner(ctx, owner.UID)
	if err != nil {
		return nil, domainerrors.ErrListAddressesFailed.WithDetails(err.Error())
	}

	return addresses, nil
}

// ListPublicAddresses queries every public address and drops the viewer's own.
// The store returns all public addresses before filtering, which bounds how far this scales.
func (s *addressService) ListPublicAddresses(ctx context.Context, viewer *entity.Identity) ([]*entity.Address, error) {
	addresses, err := s.addressRepo.FindPublicAddresses(ctx)
	if err != nil {
		return nil, domainerrors.ErrListAddressesFailed.WithDetails(err.Error())
	}

	return excludeOwnedBy(addresses, uidOf(viewer)), nil
}

// MapAddresses loads both lists concurrently and keeps the markers inside bound.
func (s *addressService) MapAddresses(ctx context.Context, viewer *entity.Identity, bound *orb.Bound) (*usecase.MapAddresses, error) {
	if viewer == nil {
		return nil, domainerrors.ErrNotSignedIn
	}

	var result usecase.MapAddresses

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		result.Mine, err = s.addressRepo.FindAddressesByOwner(gctx, viewer.UID)

		return err
	})
	g.Go(func() error {
		public, err := s.addressRepo.FindPublicAddresses(gctx)
		if err != nil {
			return err
		}
		result.Others = excludeOwnedBy(public, viewer.UID)

		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, domainerrors.ErrListAddressesFailed.WithDetails(err.Error())
	}

	if bound != nil {
		result.Mine = withinBound(result.Mine, *bound)
		result.Others = withinBound(result.Others, *bound)
	}

	return &result, nil
}

// AddComment stores a comment and returns the reloaded detail.
func (s *addressService) AddComment(ctx context.Context, author *entity.Identity, addressID, text string) (*entity.AddressDetail, error) {
	if author == nil {
		return nil, domainerrors.ErrNotSignedIn
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domainerrors.ErrCommentRequired
	}

	address, err := s.readableAddress(ctx, author, addressID)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		AddressID:  address.ID,
		Text:       text,
		AuthorUID:  author.UID,
		AuthorName: author.Name(),
	}
	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, domainerrors.ErrSaveCommentFailed.WithDetails(err.Error())
	}

	s.publish(ctx, entity.AddressCommentAdded, author.UID, address, func(e *entity.AddressEvent) {
		e.CommentID = comment.ID
	})

	return s.loadDetail(ctx, author, address)
}

// DeleteComment removes a comment written by requester and returns the reloaded detail.
func (s *addressService) DeleteComment(ctx context.Context, requester *entity.Identity, addressID, commentID string) (*entity.AddressDetail, error) {
	if requester == nil {
		return nil, domainerrors.ErrNotSignedIn
	}

	address, err := s.readableAddress(ctx, requester, addressID)
	if err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.FindCommentByID(ctx, address.ID, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, domainerrors.ErrCommentNotFound
		}

		return nil, domainerrors.ErrDeleteCommentFailed.WithDetails(err.Error())
	}

	if !comment.IsAuthoredBy(requester.UID) {
		s.log(ctx).Warn("Comment deletion refused",
			slog.String("address_id", address.ID),
			slog.String("comment_id", commentID),
			slog.String("requester_uid", requester.UID),
		)

		return nil, domainerrors.ErrCommentNotAuthor
	}

	if err := s.commentRepo.DeleteComment(ctx, address.ID, commentID); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, domainerrors.ErrCommentNotFound
		}

		return nil, domainerrors.ErrDeleteCommentFailed.WithDetails(err.Error())
	}

	s.publish(ctx, entity.AddressCommentDelete, requester.UID, address, func(e *entity.AddressEvent) {
		e.CommentID = commentID
	})

	return s.loadDetail(ctx, requester, address)
}

// SubmitRating upserts the rater's stars and rewrites the aggregate in one transaction.
// Every read happens before the first write.
func (s *addressService) SubmitRating(ctx context.Context, rater *entity.Identity, addressID string, stars int) (*entity.RatingSummary, error) {
	if rater == nil {
		return nil, domainerrors.ErrNotSignedIn
	}
	if !entity.ValidStars(stars) {
		return nil, domainerrors.ErrInvalidStars
	}

	var (
		summary entity.RatingSummary
		address *entity.Address
	)
	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		addressRepo := repos.NewAddressRepository()
		ratingRepo := repos.NewRatingRepository()

		found, err := addressRepo.FindAddressByID(ctx, addressID)
		if err != nil {
			return err
		}
		if !found.ReadableBy(rater.UID) {
			return repository.ErrAddressNotFound
		}

		existing, err := ratingRepo.FindRatingsByAddress(ctx, addressID)
		if err != nil {
			return err
		}

		rating := &entity.Rating{AddressID: addressID, UserUID: rater.UID, Stars: stars}
		summary = entity.AggregateRatings(upsertRating(existing, rating), rater.UID)

		if err := ratingRepo.UpsertRating(ctx, rating); err != nil {
			return err
		}
		if err := addressRepo.UpdateRatingAggregate(ctx, addressID, summary.Average, summary.Count); err != nil {
			return err
		}

		found.AverageRating = summary.Average
		found.RatingsCount = summary.Count
		address = found

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, domainerrors.ErrSaveRatingFailed.WithDetails(err.Error())
	}

	s.publish(ctx, entity.AddressRated, rater.UID, address, func(e *entity.AddressEvent) {
		e.Stars = stars
	})

	return &summary, nil
}

// DeleteAddress runs the cascade: stored images (best effort), nested comments and ratings, then the record.
// Success is reported only once the record is gone.
func (s *addressService) DeleteAddress(ctx context.Context, requester *entity.Identity, addressID string) error {
	if requester == nil {
		return domainerrors.ErrNotSignedIn
	}

	address, err := s.readableAddress(ctx, requester, addressID)
	if err != nil {
		return err
	}
	if !address.IsOwnedBy(requester.UID) {
		s.log(ctx).Warn("Address deletion refused",
			slog.String("address_id", address.ID),
			slog.String("requester_uid", requester.UID),
		)

		return domainerrors.ErrAddressNotOwner
	}

	s.removeAddressObjects(ctx, address.ID)

	if err := s.addressRepo.DeleteCommentsAndRatings(ctx, address.ID); err != nil {
		return domainerrors.ErrDeleteAddressFailed.WithDetails(err.Error())
	}

	if err := s.addressRepo.DeleteAddress(ctx, address.ID); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}

		return domainerrors.ErrDeleteAddressFailed.WithDetails(err.Error())
	}

	s.log(ctx).Info("Address deleted", slog.String("address_id", address.ID))
	s.publish(ctx, entity.AddressDeleted, requester.UID, address, nil)

	return nil
}

// UploadImage stores an image under the address and appends its URL to the record.
func (s *addressService) UploadImage(ctx context.Context, uploader *entity.Identity, addressID string, image *entity.Image) (string, error) {
	if uploader == nil {
		return "", domainerrors.ErrNotSignedIn
	}
	if image.Empty() {
		return "", domainerrors.ErrImageRequired
	}
	if err := s.checkImageSize(image); err != nil {
		return "", err
	}

	address, err := s.readableAddress(ctx, uploader, addressID)
	if err != nil {
		return "", err
	}

	key := s.addressImageKey(address.ID, image)
	if err := s.objectStore.Put(ctx, key, image.Data, image.ContentType); err != nil {
		return "", domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}

	url := s.objectStore.URL(key)
	if err := s.addressRepo.AppendImage(ctx, address.ID, url); err != nil {
		s.removeObject(ctx, key, "upload_rollback")
		if errors.Is(err, repository.ErrAddressNotFound) {
			return "", domainerrors.ErrAddressNotFound
		}

		return "", domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}

	s.publish(ctx, entity.AddressImageAdded, uploader.UID, address, func(e *entity.AddressEvent) {
		e.ImageURL = url
	})

	return url, nil
}

// ShareCode renders the QR code of a readable address.
func (s *addressService) ShareCode(ctx context.Context, viewer *entity.Identity, addressID string) (*usecase.ShareCode, error) {
	address, err := s.readableAddress(ctx, viewer, addressID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrCode.GenerateAddressQR(address.ID)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return &usecase.ShareCode{Link: s.qrCode.ShareLink(address.ID), PNG: png}, nil
}

// readableAddress loads an address and hides private addresses from everyone but their owner.
func (s *addressService) readableAddress(ctx context.Context, viewer *entity.Identity, addressID string) (*entity.Address, error) {
	if strings.TrimSpace(addressID) == "" {
		return nil, domainerrors.ErrAddressIDRequired
	}

	address, err := s.addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, domainerrors.ErrLoadAddressFailed.WithDetails(err.Error())
	}

	if !address.ReadableBy(uidOf(viewer)) {
		return nil, domainerrors.ErrAddressNotFound
	}

	return address, nil
}

func (s *addressService) checkImageSize(image *entity.Image) error {
	if image.Empty() || s.maxUploadSize <= 0 {
		return nil
	}
	if int64(len(image.Data)) > s.maxUploadSize {
		return domainerrors.ErrImageTooLarge.WithDetails("max " + util.FormatBytes(s.maxUploadSize))
	}

	return nil
}

// addressImageKey builds addresses/{id}/{unixMillis}_{rand}.{ext}.
func (s *addressService) addressImageKey(addressID string, image *entity.Image) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	return constants.AddressImagePrefix + "/" + addressID + "/" +
		strconv.FormatInt(s.now().UnixMilli(), 10) + "_" + suffix + "." + image.Ext()
}

// removeAddressObjects deletes every object under the address prefix. Failures are logged and counted.
func (s *addressService) removeAddressObjects(ctx context.Context, addressID string) {
	prefix := constants.AddressImagePrefix + "/" + addressID + "/"

	keys, err := s.objectStore.List(ctx, prefix)
	if err != nil {
		s.log(ctx).Warn("Storage clean warning: listing failed",
			slog.String("prefix", prefix),
			slog.Any("error", err),
		)
		s.metrics.StorageCleanupFailed("list")

		return
	}

	for _, key := range keys {
		s.removeObject(ctx, key, "cascade")
	}
}

func (s *addressService) removeObject(ctx context.Context, key, reason string) {
	err := s.objectStore.Delete(ctx, key)
	if err == nil || errors.Is(err, service.ErrObjectNotFound) {
		return
	}

	s.log(ctx).Warn("Storage clean warning",
		slog.String("key", key),
		slog.String("reason", reason),
		slog.Any("error", err),
	)
	s.metrics.StorageCleanupFailed(reason)
}

// publish emits an address event. Publishing never fails the operation.
func (s *addressService) publish(ctx context.Context, eventType entity.AddressEventType, actorUID string, address *entity.Address, mutate func(*entity.AddressEvent)) {
	event := &entity.AddressEvent{
		ID:         uuid.NewString(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		AddressID:  address.ID,
		ActorUID:   actorUID,
		IsPublic:   address.IsPublic,
		OccurredAt: s.now().UTC(),
	}
	if mutate != nil {
		mutate(event)
	}

	if err := s.publisher.PublishAddressEvent(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish address event",
			slog.String("type", string(eventType)),
			slog.String("address_id", address.ID),
			slog.Any("error", err),
		)
		s.metrics.EventPublishFailed(string(eventType))
	}
}

// upsertRating returns ratings with rating replacing the entry of the same user, or appended.
func upsertRating(ratings []*entity.Rating, rating *entity.Rating) []*entity.Rating {
	merged := make([]*entity.Rating, 0, len(ratings)+1)
	replaced := false
	for _, r := range ratings {
		if r != nil && r.UserUID == rating.UserUID {
			merged = append(merged, rating)
			replaced = true

			continue
		}
		merged = append(merged, r)
	}
	if !replaced {
		merged = append(merged, rating)
	}

	return merged
}

// excludeOwnedBy drops the addresses owned by uid, keeping order.
func excludeOwnedBy(addresses []*entity.Address, uid string) []*entity.Address {
	if uid == "" {
		return addresses
	}

	filtered := make([]*entity.Address, 0, len(addresses))
	for _, a := range addresses {
		if a.OwnerUID != uid {
			filtered = append(filtered, a)
		}
	}

	return filtered
}

func withinBound(addresses []*entity.Address, bound orb.Bound) []*entity.Address {
	filtered := make([]*entity.Address, 0, len(addresses))
	for _, a := range addresses {
		if bound.Contains(a.Location.Point()) {
			filtered = append(filtered, a)
		}
	}

	return filtered
}

func uidOf(identity *entity.Identity) string {
	if identity == nil {
		return ""
	}

	return identity.UID
}
