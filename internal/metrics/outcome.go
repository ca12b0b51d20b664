package metrics

import (
	"errors"

	"github.com/GoArmGo/PinAlbum/internal/domain"
)

// Outcome переводит ошибку в значение метки outcome
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrSyncInProgress):
		return OutcomeBusy
	case errors.Is(err, domain.ErrNetwork):
		return OutcomeNetwork
	case errors.Is(err, domain.ErrServer):
		return OutcomeServer
	case errors.Is(err, domain.ErrDatabase):
		return OutcomeDatabase
	default:
		return OutcomeUnknown
	}
}
