package global

import (
	"github.com/sillo/learning-vault-service/pkg/fileurl"
)

var (
	// 程序执行目录
	ROOT string
	Name string = "Sillo Learning Vault Service"
)

func init() {

	filename := fileurl.GetExePath()
	ROOT = filename + "/"

}
