package scripts

import (
	"github.com/reusee/dscope"
	"github.com/reusee/ngl/actions"
	"github.com/reusee/ngl/logs"
)

type Module struct {
	dscope.Module
	Actions actions.Module
	Logs    logs.Module
}
