package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/sillo/learning-vault-service/global"
	internalApp "github.com/sillo/learning-vault-service/internal/app"
	"github.com/sillo/learning-vault-service/internal/dao"
	"github.com/sillo/learning-vault-service/internal/routers"
	"github.com/sillo/learning-vault-service/internal/task"
	"github.com/sillo/learning-vault-service/pkg/logger"
	"github.com/sillo/learning-vault-service/pkg/safe_close"
	"github.com/sillo/learning-vault-service/pkg/tracer"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	validatorV10 "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultShutdownTimeout 默认关闭超时时间
const DefaultShutdownTimeout = 30 * time.Second

type Server struct {
	logger       *zap.Logger
	db           *gorm.DB
	ut           *ut.UniversalTranslator
	httpServer   *http.Server
	sc           *safe_close.SafeClose
	app          *internalApp.App
	scheduler    *task.Scheduler
	tracerCloser io.Closer
}

func NewServer(runEnv *runFlags) (*Server, error) {

	cfg, err := global.ConfigLoad(runEnv.config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// 命令行参数覆盖配置文件
	if len(runEnv.port) > 0 {
		cfg.Server.HttpPort = runEnv.port
	}
	if len(runEnv.runMode) > 0 {
		cfg.Server.RunMode = runEnv.runMode
	}

	gin.SetMode(cfg.Server.RunMode)

	s := &Server{
		sc: safe_close.NewSafeClose(),
	}

	// 初始化日志器
	lg, err := logger.NewLogger(logger.Config{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		Production: cfg.Log.Production,
	})
	if err != nil {
		return nil, fmt.Errorf("initLogger: %w", err)
	}
	s.logger = lg
	global.Logger = lg

	// 初始化存储目录
	if err := initStorage(); err != nil {
		return nil, fmt.Errorf("initStorage: %w", err)
	}

	// 初始化数据库
	db, err := dao.NewDBEngine(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("initDatabase: %w", err)
	}
	s.db = db

	// 初始化链路追踪
	if cfg.Tracer.Enable {
		jaegerTracer, closer, err := tracer.NewJaegerTracer(global.Name, cfg.Tracer.Host)
		if err != nil {
			return nil, fmt.Errorf("initTracer: %w", err)
		}
		opentracing.SetGlobalTracer(jaegerTracer)
		s.tracerCloser = closer
	}

	// 初始化 App Container
	app, err := internalApp.NewApp(s.logger, db)
	if err != nil {
		return nil, fmt.Errorf("failed to create app container: %w", err)
	}
	s.app = app

	// 初始化默认账号
	if err := app.Bootstrap(context.Background()); err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	// 初始化验证器
	uni, err := initValidator()
	if err != nil {
		return nil, fmt.Errorf("initValidator: %w", err)
	}
	s.ut = uni

	// 启动调度器
	initScheduler(s)

	banner := `
   _____ _ ____
  / ___/(_) / /___
  \__ \/ / / / __ \
 ___/ / / / / /_/ /
/____/_/_/_/\____/             `
	s.logger.Warn(fmt.Sprintf("%s\n\n%s v%s\nGit: %s\nBuildTime: %s\n", banner, internalApp.Name, internalApp.Version, internalApp.GitTag, internalApp.BuildTime))

	s.logger.Warn("config loaded", zap.String("path", cfg.File))

	// 启动 HTTP API 服务器
	addr := cfg.Server.HttpPort
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}
	s.logger.Warn("api_router", zap.String("config.server.HttpPort", addr))
	s.httpServer = &http.Server{
		Addr:           addr,
		Handler:        routers.NewRouter(s.app, s.ut),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
	s.sc.Attach(func(done func(), closeSignal <-chan struct{}) {
		defer done()
		errChan := make(chan error, 1)
		go func() {
			errChan <- s.httpServer.ListenAndServe()
		}()
		select {
		case err := <-errChan:
			s.logger.Error("api service err", zap.Error(err))
			s.sc.SendCloseSignal(err)
		case <-closeSignal:

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// 停止 HTTP 服务器
			if err := s.httpServer.Shutdown(ctx); err != nil {
				s.logger.Error("api service shutdown error", zap.Error(err))
			}
		}
	})

	// 注册后台组件的优雅关闭
	s.sc.Attach(func(done func(), closeSignal <-chan struct{}) {
		defer done()
		<-closeSignal
		if s.scheduler != nil {
			s.scheduler.Stop()
		}
		if s.tracerCloser != nil {
			_ = s.tracerCloser.Close()
		}
		s.logger.Info("background components shutdown gracefully")
	})

	return s, nil
}

func initScheduler(s *Server) {
	cfg := global.Config.Cron
	if !cfg.Enable {
		return
	}

	s.scheduler = task.NewScheduler(s.logger)

	sweep := task.NewOrphanSweep(s.app.NoteRepo, s.logger)
	if err := s.scheduler.Register(cfg.OrphanSweepSpec, "orphan_note_sweep", sweep.Run); err != nil {
		s.logger.Error("failed to register orphan sweep task", zap.Error(err))
		return
	}

	s.scheduler.Start()
}

// initValidator 初始化验证器，返回 UniversalTranslator
func initValidator() (*ut.UniversalTranslator, error) {
	var uni *ut.UniversalTranslator

	validate, ok := binding.Validator.Engine().(*validatorV10.Validate)
	if ok {

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		uni = ut.New(en.New(), en.New(), zh.New())

		zhTran, _ := uni.GetTranslator("zh")
		enTran, _ := uni.GetTranslator("en")

		err := zh_translations.RegisterDefaultTranslations(validate, zhTran)
		if err != nil {
			return nil, err
		}
		err = en_translations.RegisterDefaultTranslations(validate, enTran)
		if err != nil {
			return nil, err
		}
	}

	return uni, nil
}

// initStorage 初始化存储目录
func initStorage() error {
	dirs := []string{
		filepath.Dir(global.Config.Log.File),
		filepath.Dir(global.Config.Database.Path),
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0754); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetApp 获取 App Container
func (s *Server) GetApp() *internalApp.App {
	return s.app
}
