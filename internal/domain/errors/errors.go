package errors

import (
	"net/http"

	"adresses/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business code, so copies made
// by WithDetails still satisfy errors.Is against the catalogue entry.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. Messages are shown to end users as-is.
var (
	// Validation
	ErrTitleRequired = NewBaseError(
		http.StatusBadRequest,
		"TITLE_REQUIRED",
		"Titre requis",
		"",
	)

	ErrLocationRequired = NewBaseError(
		http.StatusBadRequest,
		"LOCATION_REQUIRED",
		"Choisissez une localisation",
		"",
	)

	ErrLocationOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"LOCATION_OUT_OF_RANGE",
		"Localisation invalide",
		"",
	)

	ErrCommentRequired = NewBaseError(
		http.StatusBadRequest,
		"COMMENT_REQUIRED",
		"Écris un commentaire avant de l’envoyer.",
		"",
	)

	ErrImageRequired = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_REQUIRED",
		"Sélectionne une image d’abord.",
		"",
	)

	ErrImageTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"IMAGE_TOO_LARGE",
		"Image trop volumineuse",
		"",
	)

	ErrInvalidStars = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STARS",
		"La note doit être comprise entre 1 et 5",
		"",
	)

	ErrInvalidAvatarURL = NewBaseError(
		http.StatusBadRequest,
		"INVALID_AVATAR_URL",
		"URL d’avatar invalide",
		"",
	)

	ErrAddressIDRequired = NewBaseError(
		http.StatusBadRequest,
		"ADDRESS_ID_REQUIRED",
		"Identifiant d'adresse manquant.",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Données invalides",
		"",
	)

	// Authentication
	ErrNotSignedIn = NewBaseError(
		http.StatusUnauthorized,
		"NOT_SIGNED_IN",
		"Vous devez être connecté",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Identifiants invalides ou compte introuvable.",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Session expirée, reconnecte-toi.",
		"",
	)

	ErrEmailAlreadyUsed = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_USED",
		"Cet email est déjà utilisé",
		"",
	)

	ErrPasswordTooWeak = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_WEAK",
		"Le mot de passe doit contenir au moins 6 caractères",
		"",
	)

	ErrSignInDelegated = NewBaseError(
		http.StatusNotImplemented,
		"SIGN_IN_DELEGATED",
		"La connexion se fait depuis l’application",
		"",
	)

	// Authorization
	ErrCommentNotAuthor = NewBaseError(
		http.StatusForbidden,
		"COMMENT_NOT_AUTHOR",
		"Vous ne pouvez supprimer que vos propres commentaires.",
		"",
	)

	ErrAddressNotOwner = NewBaseError(
		http.StatusForbidden,
		"ADDRESS_NOT_OWNER",
		"Seul le propriétaire peut supprimer l’adresse.",
		"",
	)

	// Not found
	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"Adresse introuvable",
		"",
	)

	ErrCommentNotFound = NewBaseError(
		http.StatusNotFound,
		"COMMENT_NOT_FOUND",
		"Commentaire introuvable",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Utilisateur introuvable",
		"",
	)

	ErrMediaNotFound = NewBaseError(
		http.StatusNotFound,
		"MEDIA_NOT_FOUND",
		"Fichier introuvable",
		"",
	)

	// Remote failures
	ErrCreateAddressFailed = NewBaseError(
		http.StatusInternalServerError,
		"CREATE_ADDRESS_FAILED",
		"Erreur lors de la création de l'adresse",
		"",
	)

	ErrLoadAddressFailed = NewBaseError(
		http.StatusInternalServerError,
		"LOAD_ADDRESS_FAILED",
		"Impossible de charger l'adresse.",
		"",
	)

	ErrListAddressesFailed = NewBaseError(
		http.StatusInternalServerError,
		"LIST_ADDRESSES_FAILED",
		"Impossible de charger les adresses.",
		"",
	)

	ErrSaveCommentFailed = NewBaseError(
		http.StatusInternalServerError,
		"SAVE_COMMENT_FAILED",
		"Impossible d’envoyer le commentaire.",
		"",
	)

	ErrDeleteCommentFailed = NewBaseError(
		http.StatusInternalServerError,
		"DELETE_COMMENT_FAILED",
		"Impossible de supprimer le commentaire.",
		"",
	)

	ErrSaveRatingFailed = NewBaseError(
		http.StatusInternalServerError,
		"SAVE_RATING_FAILED",
		"Impossible d'enregistrer la note.",
		"",
	)

	ErrDeleteAddressFailed = NewBaseError(
		http.StatusInternalServerError,
		"DELETE_ADDRESS_FAILED",
		"La suppression a échoué.",
		"",
	)

	ErrUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPLOAD_FAILED",
		"Impossible d’envoyer l’image.",
		"",
	)

	ErrAvatarUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"AVATAR_UPLOAD_FAILED",
		"L’upload de l’avatar a échoué.",
		"",
	)

	ErrProfileUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROFILE_UPDATE_FAILED",
		"La mise à jour du profil a échoué.",
		"",
	)

	ErrSignOutFailed = NewBaseError(
		http.StatusInternalServerError,
		"SIGN_OUT_FAILED",
		"La déconnexion a échoué.",
		"",
	)

	ErrIdentityServiceFailed = NewBaseError(
		http.StatusBadGateway,
		"IDENTITY_SERVICE_FAILED",
		"Le service d’authentification est indisponible.",
		"",
	)

	ErrPlaceSearchFailed = NewBaseError(
		http.StatusBadGateway,
		"PLACE_SEARCH_FAILED",
		"La recherche de lieu a échoué.",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Échec de la transaction",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Une erreur est survenue.",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Action non autorisée",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Ressource introuvable",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing message
func (e *DatabaseExecuteError) Message() string {
	return "Erreur de base de données"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
