package middleware

import (
	"github.com/sillo/learning-vault-service/global"
	pkgapp "github.com/sillo/learning-vault-service/pkg/app"

	"github.com/gin-gonic/gin"
)

func AppInfo() gin.HandlerFunc {

	return func(c *gin.Context) {
		c.Set("app_name", global.Name)
		c.Set("access_host", pkgapp.GetAccessHost(c))

		c.Next()
	}
}
