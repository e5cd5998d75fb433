package worker

import (
	"github.com/Henlorata/FrakHub-sub001/internal/service"
)

// StartProfileEventWorker registers handlers for profile lifecycle events.
func StartProfileEventWorker(profileEvents *service.ProfileEventService) {
	if profileEvents == nil {
		return
	}
	profileEvents.RegisterHandlers()
}
