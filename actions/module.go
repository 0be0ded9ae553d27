package actions

import (
	"github.com/reusee/dscope"
	"github.com/reusee/ngl/logs"
	"github.com/reusee/ngl/nglconfigs"
)

type Module struct {
	dscope.Module
	Configs nglconfigs.Module
	Logs    logs.Module
}
