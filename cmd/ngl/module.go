package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/ngl/actions"
	"github.com/reusee/ngl/debugs"
	"github.com/reusee/ngl/scripts"
	"github.com/reusee/ngl/servers"
)

type Module struct {
	dscope.Module
	Actions actions.Module
	Servers servers.Module
	Scripts scripts.Module
	Debugs  debugs.Module
}
