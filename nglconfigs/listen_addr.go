package nglconfigs

import (
	"github.com/reusee/ngl/cmds"
	"github.com/reusee/ngl/configs"
	"github.com/reusee/ngl/vars"
)

type ListenAddr string

var _ configs.Configurable = ListenAddr("")

func (ListenAddr) ConfigExpr() string {
	return "listen_addr"
}

const defaultListenAddr = "127.0.0.1:8035"

var listenFlag = cmds.Var[string]("-listen", "http listen address")

func (Module) ListenAddr(
	loader configs.Loader,
) ListenAddr {
	return ListenAddr(vars.FirstNonZero(
		*listenFlag,
		configs.First[string](loader, ListenAddr("").ConfigExpr()),
		defaultListenAddr,
	))
}
