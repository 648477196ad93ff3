package view

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"adresses/internal/domain/entity"
	domainerrors "adresses/internal/domain/errors"
	"adresses/internal/errors"
)

// DetailStatus is the state machine of the detail view.
type DetailStatus string

const (
	DetailLoading  DetailStatus = "loading"
	DetailLoaded   DetailStatus = "loaded"
	DetailNotFound DetailStatus = "notFound"
	DetailError    DetailStatus = "error"
)

const (
	msgMissingID          = "Identifiant d'adresse manquant."
	msgLoadFailed         = "Impossible de charger l'adresse."
	msgCommentEmpty       = "Écris un commentaire avant de l’envoyer."
	msgCommentSignIn      = "Connecte-toi pour commenter."
	msgCommentAdded       = "Commentaire ajouté."
	msgCommentFailed      = "Impossible d’envoyer le commentaire."
	msgCommentDeleted     = "Commentaire supprimé."
	msgCommentDelFailed   = "Impossible de supprimer le commentaire."
	msgPhotoMissing       = "Sélectionne une image d’abord."
	msgPhotoSent          = "Image envoyée."
	msgPhotoFailed        = "Impossible d’envoyer l’image."
	msgRateSignIn         = "Connecte-toi pour noter cette adresse."
	msgRateFailed         = "Impossible d'enregistrer la note."
	msgConfirmDelete      = "Supprimer définitivement cette adresse ?"
	msgAddressDeleted     = "Adresse supprimée."
	msgAddressDelFailed   = "La suppression a échoué."
	msgAddressSignInFirst = "Connecte-toi pour continuer."
)

// DetailState is what the detail view renders.
type DetailState struct {
	Status       DetailStatus
	Detail       *entity.AddressDetail
	CommentInput string
	PendingPhoto *entity.Image
	Busy         bool // An upload, a comment or a delete is in flight.
}

// IsOwner reports whether uid owns the loaded address.
func (s DetailState) IsOwner(uid string) bool {
	return s.Detail != nil && s.Detail.Address != nil && s.Detail.Address.IsOwnedBy(uid)
}

// DetailView shows one address with its comments and ratings.
type DetailView struct {
	addressID string
	deps      Deps
	logger    *slog.Logger
	loadSeq   atomic.Uint64
	rateSeq   atomic.Uint64

	mu    sync.Mutex
	state DetailState
}

// NewDetailView creates the view of addressID in the loading state.
func NewDetailView(addressID string, deps Deps) *DetailView {
	return &DetailView{
		addressID: strings.TrimSpace(addressID),
		deps:      deps,
		logger:    deps.logger().With(slog.String("address_id", addressID)),
		state:     DetailState{Status: DetailLoading},
	}
}

// State returns a copy of the current state. Detail is shared and must not be mutated.
func (v *DetailView) State() DetailState {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.state
}

// Load fetches the address, its comments and its ratings. Only the latest load is applied.
func (v *DetailView) Load(ctx context.Context) {
	if v.addressID == "" {
		v.setStatus(DetailError)
		notify(v.deps.Notifier, titleError, msgMissingID)

		return
	}

	token := v.loadSeq.Add(1)
	detail, err := v.deps.Addresses.GetAddress(ctx, v.deps.identity(), v.addressID)

	v.applyLoad(token, detail, err).show(v.deps.Notifier)
}

func (v *DetailView) applyLoad(token uint64, detail *entity.AddressDetail, err error) alert {
	v.mu.Lock()
	defer v.mu.Unlock()

	if token != v.loadSeq.Load() {
		return alert{}
	}

	switch {
	case err == nil:
		v.state.Status = DetailLoaded
		v.state.Detail = detail

		return alert{}
	case errors.Is(err, domainerrors.ErrAddressNotFound):
		v.state.Status = DetailNotFound
		v.state.Detail = nil

		return alert{title: titleError, message: domainerrors.ErrAddressNotFound.Message()}
	default:
		v.logger.Error("Address load failed", slog.Any("error", err))
		v.state.Status = DetailError

		return errorAlert(err, msgLoadFailed)
	}
}

// SetCommentInput updates the comment text field.
func (v *DetailView) SetCommentInput(text string) {
	v.mu.Lock()
	v.state.CommentInput = text
	v.mu.Unlock()
}

// PostComment sends the comment input, clears it on success and reloads.
func (v *DetailView) PostComment(ctx context.Context) {
	v.mu.Lock()
	text := strings.TrimSpace(v.state.CommentInput)
	v.mu.Unlock()

	if text == "" {
		notify(v.deps.Notifier, titleInfo, msgCommentEmpty)

		return
	}

	identity := v.deps.identity()
	if identity == nil {
		notify(v.deps.Notifier, titleSignIn, msgCommentSignIn)

		return
	}

	v.setBusy(true)
	defer v.setBusy(false)

	if _, err := v.deps.Addresses.AddComment(ctx, identity, v.addressID, text); err != nil {
		v.logger.Warn("Comment post failed", slog.Any("error", err))
		notifyError(v.deps.Notifier, err, msgCommentFailed)

		return
	}

	v.SetCommentInput("")
	notify(v.deps.Notifier, titleSuccess, msgCommentAdded)
	v.Load(ctx)
}

// DeleteComment removes one of the viewer's own comments and reloads.
func (v *DetailView) DeleteComment(ctx context.Context, commentID string) {
	identity := v.deps.identity()
	if identity == nil {
		notify(v.deps.Notifier, titleSignIn, msgAddressSignInFirst)

		return
	}

	comment := v.findComment(commentID)
	if comment == nil {
		return
	}
	if !comment.IsAuthoredBy(identity.UID) {
		notify(v.deps.Notifier, titleForbidden, domainerrors.ErrCommentNotAuthor.Message())

		return
	}

	v.setBusy(true)
	defer v.setBusy(false)

	if _, err := v.deps.Addresses.DeleteComment(ctx, identity, v.addressID, commentID); err != nil {
		v.logger.Warn("Comment delete failed", slog.String("comment_id", commentID), slog.Any("error", err))
		notifyError(v.deps.Notifier, err, msgCommentDelFailed)

		return
	}

	notify(v.deps.Notifier, titleSuccess, msgCommentDeleted)
	v.Load(ctx)
}

func (v *DetailView) findComment(commentID string) *entity.Comment {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state.Detail == nil {
		return nil
	}
	for _, c := range v.state.Detail.Comments {
		if c.ID == commentID {
			return c
		}
	}

	return nil
}

// PickPhoto keeps a picked image until UploadPhoto is called.
func (v *DetailView) PickPhoto(image *entity.Image) {
	v.mu.Lock()
	v.state.PendingPhoto = image
	v.mu.Unlock()
}

// UploadPhoto uploads the picked image and reloads.
func (v *DetailView) UploadPhoto(ctx context.Context) {
	v.mu.Lock()
	photo := v.state.PendingPhoto
	v.mu.Unlock()

	if photo.Empty() {
		notify(v.deps.Notifier, titleInfo, msgPhotoMissing)

		return
	}

	identity := v.deps.identity()
	if identity == nil {
		notify(v.deps.Notifier, titleSignIn, msgAddressSignInFirst)

		return
	}

	v.setBusy(true)
	defer v.setBusy(false)

	if _, err := v.deps.Addresses.UploadImage(ctx, identity, v.addressID, photo); err != nil {
		v.logger.Warn("Photo upload failed", slog.Any("error", err))
		notifyError(v.deps.Notifier, err, msgPhotoFailed)

		return
	}

	v.PickPhoto(nil)
	notify(v.deps.Notifier, titleSuccess, msgPhotoSent)
	v.Load(ctx)
}

// Rate shows stars as the viewer's rating at once, then persists them.
// A failed submission restores the previous stars.
func (v *DetailView) Rate(ctx context.Context, stars int) {
	identity := v.deps.identity()
	if identity == nil {
		notify(v.deps.Notifier, titleSignIn, msgRateSignIn)

		return
	}
	if !entity.ValidStars(stars) {
		notify(v.deps.Notifier, titleError, domainerrors.ErrInvalidStars.Message())

		return
	}

	v.mu.Lock()
	if v.state.Detail == nil {
		v.mu.Unlock()

		return
	}
	previous := v.state.Detail.Rating.Mine
	v.setMineLocked(stars)
	v.mu.Unlock()

	token := v.rateSeq.Add(1)
	summary, err := v.deps.Addresses.SubmitRating(ctx, identity, v.addressID, stars)

	v.applyRating(token, previous, summary, err).show(v.deps.Notifier)
}

func (v *DetailView) applyRating(token uint64, previous int, summary *entity.RatingSummary, err error) alert {
	v.mu.Lock()
	defer v.mu.Unlock()

	if token != v.rateSeq.Load() || v.state.Detail == nil {
		return alert{}
	}

	if err != nil {
		v.logger.Warn("Rating failed", slog.Int("stars", v.state.Detail.Rating.Mine), slog.Any("error", err))
		v.setMineLocked(previous)

		return errorAlert(err, msgRateFailed)
	}

	detail := *v.state.Detail
	detail.Rating = *summary
	if detail.Address != nil {
		address := *detail.Address
		address.AverageRating = summary.Average
		address.RatingsCount = summary.Count
		detail.Address = &address
	}
	v.state.Detail = &detail

	return alert{}
}

// setMineLocked copies the detail so states handed out earlier are not mutated.
func (v *DetailView) setMineLocked(stars int) {
	detail := *v.state.Detail
	detail.Rating.Mine = stars
	v.state.Detail = &detail
}

// DeleteAddress asks for confirmation, deletes the address and navigates back. Owner only.
func (v *DetailView) DeleteAddress(ctx context.Context) {
	identity := v.deps.identity()
	if identity == nil {
		notify(v.deps.Notifier, titleSignIn, msgAddressSignInFirst)

		return
	}

	state := v.State()
	if state.Detail == nil {
		return
	}
	if !state.IsOwner(identity.UID) {
		notify(v.deps.Notifier, titleForbidden, domainerrors.ErrAddressNotOwner.Message())

		return
	}

	if v.deps.Confirmer == nil || !v.deps.Confirmer.Confirm(ctx, titleConfirm, msgConfirmDelete) {
		return
	}

	v.setBusy(true)
	defer v.setBusy(false)

	if err := v.deps.Addresses.DeleteAddress(ctx, identity, v.addressID); err != nil {
		v.logger.Error("Address delete failed", slog.Any("error", err))
		notifyError(v.deps.Notifier, err, msgAddressDelFailed)

		return
	}

	notify(v.deps.Notifier, titleSuccess, msgAddressDeleted)
	if v.deps.Navigator != nil {
		v.deps.Navigator.Back()
	}
}

func (v *DetailView) setStatus(status DetailStatus) {
	v.mu.Lock()
	v.state.Status = status
	v.mu.Unlock()
}

func (v *DetailView) setBusy(busy bool) {
	v.mu.Lock()
	v.state.Busy = busy
	v.mu.Unlock()
}
