package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"adresses/internal/domain/entity"
	domainerrors "adresses/internal/domain/errors"
	mockUsecase "adresses/internal/mocks/usecase"
	"adresses/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAddressHandlerForTest(t *testing.T) (*AddressHandler, *mockUsecase.MockAddressUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockAddressUsecase(t)
	h := NewAddressHandler(AddressHandlerParams{
		AddressUC: uc,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, uc
}

func TestAddressHandler_CreateAddress_JSON(t *testing.T) {
	h, uc := newAddressHandlerForTest(t)
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/addresses", map[string]any{
		"title":     "Boulangerie",
		"is_public": true,
		"location":  map[string]float64{"latitude": 48.85, "longitude": 2.35},
	})
	signIn(c, alice)

	uc.EXPECT().CreateAddress(mock.Anything, alice, mock.MatchedBy(func(in *usecase.CreateAddressInput) bool {
		return in.Title == "Boulangerie" && in.IsPublic && in.Location != nil &&
			in.Location.Latitude == 48.85 && in.Photo == nil
	})).Return(&entity.Address{ID: "a1", Title: "Boulangerie", OwnerUID: "alice", IsPublic: true}, nil)

	require.NoError(t, h.CreateAddress(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	got := decodeData[AddressDTO](t, rec)
	assert.Equal(t, "a1", got.ID)
	assert.Equal(t, "alice", got.OwnerUID)
	assert.Empty(t, got.Images)
	assert.Nil(t, got.AverageRating)
}

func TestAddressHandler_CreateAddress_ValidationMessage(t *testing.T) {
	h, uc := newAddressHandlerForTest(t)
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/addresses", map[string]any{"title": "  "})
	signIn(c, alice)

	uc.EXPECT().CreateAddress(mock.Anything, alice, mock.Anything).Return(nil, domainerrors.ErrTitleRequired)

	require.NoError(t, h.CreateAddress(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	info := decodeError(t, rec)
	assert.Equal(t, "TITLE_REQUIRED", info.Code)
	assert.Equal(t, "Titre requis", info.Message)
}

func TestAddressHandler_CreateAddress_JSONBadCoordinates(t *testing.T) {
	h, _ := newAddressHandlerForTest(t)
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/addresses", map[string]any{
		"title":    "Boulangerie",
		"location": map[string]float64{"latitude": 91, "longitude": 2.35},
	})
	signIn(c, alice)

	require.NoError(t, h.CreateAddress(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "LOCATION_OUT_OF_RANGE", decodeError(t, rec).Code)
}

func TestAddressHandler_CreateAddress_Multipart(t *testing.T) {
	h, uc := newAddressHandlerForTest(t)
	c, rec := newMultipartContext(t, http.MethodPost, "/api/v1/addresses",
		map[string]string{"title": "Marché", "is_public": "true", "latitude": "43.6", "longitude": "1.44"},
		filePart{field: "photo", filename: "marche.png", contentType: "image/png", data: []byte("png-bytes")},
	)
	signIn(c, alice)

	uc.EXPECT().CreateAddress(mock.Anything, alice, mock.MatchedBy(func(in *usecase.CreateAddressInput) bool {
		return in.Title == "Marché" && in.IsPublic && in.Location != nil && in.Location.Longitude == 1.44 &&
			in.Photo != nil && string(in.Photo.Data) == "png-bytes" && in.Photo.ContentType == "image/png"
	})).Return(&entity.Address{ID: "a2", Images: []string{"/media/addresses/a2/1_ab.png"}}, nil)

	require.NoError(t, h.CreateAddress(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []string{"/media/addresses/a2/1_ab.png"}, decodeData[AddressDTO](t, rec).Images)
}

func TestAddressHandler_CreateAddress_MultipartBadCoordinates(t *testing.T) {
	h, _ := newAddressHandlerForTest(t)
	c, rec := newMultipartContext(t, http.MethodPost, "/api/v1/addresses",
		map[string]string{"title": "Marché", "latitude": "nord"})
	signIn(c, alice)

	require.NoError(t, h.CreateAddress(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "LOCATION_OUT_OF_RANGE", decodeError(t, rec).Code)
}

func TestAddressHandler_RequiresIdentity(t *testing.T) {
	h, _ := newAddressHandlerForTest(t)
	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/addresses/mine", nil)

	require.NoError(t, h.ListMine(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "NOT_SIGNED_IN", decodeError(t, rec).Code)
}

func TestAddressHandler_GetAddress(t *testing.T) {
	t.Run("detail", func(t *testing.T) {
		h, uc := newAddressHandlerForTest(t)
		c, rec := newJSONContext(t, http.MethodGet, "/api/v1/addresses/a1", nil)
		c.SetParamNames("id")
		c.SetParamValues("a1")
		signIn(c, alice)

		avg := 4.5
		uc.EXPECT().GetAddress(mock.Anything, alice, "a1").Return(&entity.AddressDetail{
			Address:  &entity.Address{ID: "a1", AverageRating: &avg, RatingsCount: 2},
			Comments: []*entity.Comment{{ID: "c1", Text: "Top", AuthorUID: "bob"}},
			Rating:   entity.RatingSummary{Sum: 9, Count: 2, Average: &avg, Mine: 5},
		}, nil)

		require.NoError(t, h.GetAddress(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		got := decodeData[AddressDetailDTO](t, rec)
		assert.Equal(t, 2, got.Address.RatingsCount)
		require.Len(t, got.Comments, 1)
		assert.Equal(t, "Top", got.Comments[0].Text)
		assert.Equal(t, 5, got.Rating.Mine)
	})

	t.Run("not found", func(t *testing.T) {
		h, uc := newAddressHandlerForTest(t)
		c, rec := newJSONContext(t, http.MethodGet, "/api/v1/addresses/zz", nil)
		c.SetParamNames("id")
		c.SetParamValues("zz")
		signIn(c, alice)

		uc.EXPECT().GetAddress(mock.Anything, alice, "zz").Return(nil, domainerrors.ErrAddressNotFound)

		require.NoError(t, h.GetAddress(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Adresse introuvable", decodeError(t, rec).Message)
	})
}

func TestAddressHandler_Lists(t *testing.T) {
	h, uc := newAddressHandlerForTest(t)

	uc.EXPECT().ListMyAddresses(mock.Anything, alice).Return([]*entity.Address{{ID: "a1"}, {ID: "a2"}}, nil)
	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/addresses/mine", nil)
	signIn(c, alice)
	require.NoError(t, h.ListMine(c))
	assert.Len(t, decodeData[[]AddressDTO](t, rec), 2)

	uc.EXPECT().ListPublicAddresses(mock.Anything, alice).Return(nil, nil)
	c, rec = newJSONContext(t, http.MethodGet, "/api/v1/addresses/public", nil)
	signIn(c, alice)
	require.NoError(t, h.ListPublic(c))
	assert.JSONEq(t, `[]`, string(mustRawData(t, rec)))
}

func TestAddressHandler_DeleteAddress_NotOwner(t *testing.T) {
	h, uc := newAddressHandlerForTest(t)
	c, rec := newJSONContext(t, http.MethodDelete, "/api/v1/addresses/a1", nil)
	c.SetParamNames("id")
	c.SetParamValues("a1")
	signIn(c, alice)

	uc.EXPECT().DeleteAddress(mock.Anything, alice, "a1").Return(domainerrors.ErrAddressNotOwner)

	require.NoError(t, h.DeleteAddress(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Seul le propriétaire peut supprimer l’adresse.", decodeError(t, rec).Message)
}

func TestAddressHandler_Comments(t *testing.T) {
	h, uc := newAddressHandlerForTest(t)

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/addresses/a1/comments", map[string]string{"text": "Super"})
	c.SetParamNames("id")
	c.SetParamValues("a1")
	signIn(c, alice)
	uc.EXPECT().AddComment(mock.Anything, alice, "a1", "Super").Return(&entity.AddressDetail{Address: &entity.Address{ID: "a1"}}, nil)

	require.NoError(t, h.AddComment(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	c, rec = newJSONContext(t, http.MethodDelete, "/api/v1/addresses/a1/comments/c9", nil)
	c.SetParamNames("id", "commentId")
	c.SetParamValues("a1", "c9")
	signIn(c, alice)
	uc.EXPECT().DeleteComment(mock.Anything, alice, "a1", "c9").Return(nil, domainerrors.ErrCommentNotAuthor)

	require.NoError(t, h.DeleteComment(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "COMMENT_NOT_AUTHOR", decodeError(t, rec).Code)
}

func TestAddressHandler_AddComment_EmptyText(t *testing.T) {
	h, _ := newAddressHandlerForTest(t)
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/addresses/a1/comments", map[string]string{"text": ""})
	c.SetParamNames("id")
	c.SetParamValues("a1")
	signIn(c, alice)

	require.NoError(t, h.AddComment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "COMMENT_REQUIRED", decodeError(t, rec).Code)
}

func TestAddressHandler_SubmitRating_OutOfRange(t *testing.T) {
	for _, stars := range []int{0, 6} {
		h, _ := newAddressHandlerForTest(t)
		c, rec := newJSONContext(t, http.MethodPut, "/api/v1/addresses/a1/rating", map[string]int{"stars": stars})
		c.SetParamNames("id")
		c.SetParamValues("a1")
		signIn(c, alice)

		require.NoError(t, h.SubmitRating(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "stars=%d", stars)
		assert.Equal(t, "INVALID_STARS", decodeError(t, rec).Code, "stars=%d", stars)
	}
}

func TestAddressHandler_SubmitRating(t *testing.T) {
	h, uc := newAddressHandlerForTest(t)
	c, rec := newJSONContext(t, http.MethodPut, "/api/v1/addresses/a1/rating", map[string]int{"stars": 5})
	c.SetParamNames("id")
	c.SetParamValues("a1")
	signIn(c, alice)

	avg := 5.0
	uc.EXPECT().SubmitRating(mock.Anything, alice, "a1", 5).Return(&entity.RatingSummary{Sum: 5, Count: 1, Average: &avg, Mine: 5}, nil)

	require.NoError(t, h.SubmitRating(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	got := decodeData[RatingDTO](t, rec)
	assert.Equal(t, 1, got.Count)
	require.NotNil(t, got.Average)
	assert.InDelta(t, 5.0, *got.Average, 1e-9)
}

func TestAddressHandler_UploadImage(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		h, _ := newAddressHandlerForTest(t)
		c, rec := newMultipartContext(t, http.MethodPost, "/api/v1/addresses/a1/images", nil)
		c.SetParamNames("id")
		c.SetParamValues("a1")
		signIn(c, alice)

		require.NoError(t, h.UploadImage(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Sélectionne une image d’abord.", decodeError(t, rec).Message)
	})

	t.Run("stored", func(t *testing.T) {
		h, uc := newAddressHandlerForTest(t)
		c, rec := newMultipartContext(t, http.MethodPost, "/api/v1/addresses/a1/images", nil,
			filePart{field: "image", filename: "x.jpg", contentType: "image/jpeg", data: []byte("jpg")})
		c.SetParamNames("id")
		c.SetParamValues("a1")
		signIn(c, alice)

		uc.EXPECT().UploadImage(mock.Anything, alice, "a1", mock.MatchedBy(func(img *entity.Image) bool {
			return img.Filename == "x.jpg" && string(img.Data) == "jpg"
		})).Return("/media/addresses/a1/1_aa.jpg", nil)

		require.NoError(t, h.UploadImage(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, map[string]string{"url": "/media/addresses/a1/1_aa.jpg"}, decodeData[map[string]string](t, rec))
	})
}

func TestAddressHandler_ShareCode(t *testing.T) {
	h, uc := newAddressHandlerForTest(t)
	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/addresses/a1/qr", nil)
	c.SetParamNames("id")
	c.SetParamValues("a1")
	signIn(c, alice)

	uc.EXPECT().ShareCode(mock.Anything, alice, "a1").Return(&usecase.ShareCode{Link: "adresses://address/a1", PNG: []byte("\x89PNG")}, nil)

	require.NoError(t, h.ShareCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "adresses://address/a1", rec.Header().Get(HeaderShareLink))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestAddressHandler_UnexpectedErrorReachesErrorHandler(t *testing.T) {
	h, uc := newAddressHandlerForTest(t)
	c, _ := newJSONContext(t, http.MethodGet, "/api/v1/addresses/mine", nil)
	signIn(c, alice)

	uc.EXPECT().ListMyAddresses(mock.Anything, alice).Return(nil, context.Canceled)

	err := h.ListMine(c)
	assert.ErrorIs(t, err, context.Canceled)
}
