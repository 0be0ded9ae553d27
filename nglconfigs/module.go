package nglconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/ngl/configs"
	"github.com/reusee/ngl/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
