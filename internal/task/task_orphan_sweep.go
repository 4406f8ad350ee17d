package task

import (
	"context"
	"time"

	"github.com/sillo/learning-vault-service/internal/domain"

	"go.uber.org/zap"
)

// OrphanSweep 清理所属保险库已不存在的笔记
// 保险库删除的级联在事务中完成, 这里兜底清理历史遗留数据
type OrphanSweep struct {
	notes  domain.NoteRepository
	logger *zap.Logger
}

// NewOrphanSweep 创建 OrphanSweep 实例
func NewOrphanSweep(notes domain.NoteRepository, logger *zap.Logger) *OrphanSweep {
	return &OrphanSweep{notes: notes, logger: logger}
}

// Run 执行一次清理
func (t *OrphanSweep) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	deleted, err := t.notes.DeleteOrphans(ctx)
	if err != nil {
		t.logger.Error("orphan note sweep failed", zap.Error(err))
		return
	}
	if deleted > 0 {
		t.logger.Info("orphan notes removed", zap.Int64("count", deleted))
	}
}
