package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ресурс не найден (универсальная)
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки валидации и бизнес-правил
	ErrValidationFailed     = errors.New("validation failed")
	ErrPasswordTooShort     = errors.New("password must be at least 8 characters")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidEmail         = errors.New("email address is not valid")
	ErrNicknameRequired     = errors.New("nickname is required")
	ErrTournamentFull       = errors.New("tournament roster is full")
	ErrRosterLocked         = errors.New("roster can no longer be changed")
	ErrCompetitorWithdrawn  = errors.New("competitor has withdrawn")
	ErrCompetitorHasMatches = errors.New("competitor already has matches and can only be withdrawn")

	// Ошибки конфликтов
	ErrUserEmailConflict      = errors.New("email address is already in use")
	ErrUserNicknameConflict   = errors.New("nickname is already in use")
	ErrTournamentNameConflict = errors.New("tournament name already exists for this director")
	ErrCompetitorNameConflict = errors.New("competitor name already entered in this tournament")

	// Ошибки аутентификации и авторизации
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrForbiddenOperation   = errors.New("operation not allowed for the current user")

	// Ошибки, специфичные для сущностей
	ErrUserNotFound       = errors.New("user not found")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrCompetitorNotFound = errors.New("competitor not found")
	ErrMatchNotFound      = errors.New("match not found")

	// Ошибки жизненного цикла турнира
	ErrTournamentNameRequired            = errors.New("tournament name is required")
	ErrTournamentInvalidCapacity         = errors.New("tournament max competitors must be at least 2")
	ErrTournamentInvalidRounds           = errors.New("tournament total rounds must be positive")
	ErrTournamentInvalidStartDate        = errors.New("tournament start date could not be parsed")
	ErrTournamentInvalidPolicy           = errors.New("unknown pairing policy")
	ErrTournamentInvalidStatus           = errors.New("invalid tournament status provided")
	ErrTournamentInvalidStatusTransition = errors.New("invalid tournament status transition")
	ErrTournamentNotEditable             = errors.New("tournament settings are locked once play has started")
	ErrTournamentNotActive               = errors.New("tournament is not active")
	ErrTournamentInUse                   = errors.New("tournament still has competitors or matches")

	// Ошибки генерации раундов и счёта
	ErrRoundIncomplete    = errors.New("current round still has unscored matches")
	ErrRoundsExhausted    = errors.New("all scheduled rounds have already been paired")
	ErrManualPairsMissing = errors.New("manual policy requires an explicit pair list")
	ErrByeNotScorable     = errors.New("bye rows do not take scores")
	ErrScoreNegative      = errors.New("scores must not be negative")
	ErrScoreLocked        = errors.New("scores can no longer be amended")
	ErrNoPendingMatches   = errors.New("no pending matches to simulate")
	ErrNoRoundToVoid      = errors.New("no paired round to void")
	ErrRoundScored        = errors.New("round already has recorded scores")

	// Загрузка файлов
	ErrUploaderDisabled   = errors.New("file storage is not configured")
	ErrInvalidContentType = errors.New("unsupported file content type")
)
