package service

import (
	"context"
	"time"

	"github.com/sillo/learning-vault-service/global"
	"github.com/sillo/learning-vault-service/internal/dto"
	"github.com/sillo/learning-vault-service/pkg/code"
	"github.com/sillo/learning-vault-service/pkg/logger"
	"github.com/sillo/learning-vault-service/pkg/provider"

	"go.uber.org/zap"
)

// MediaService 定义媒体搜索业务服务接口
type MediaService interface {
	// Search 搜索视频或播放列表
	// 提供方未配置时返回固定的配置提示条目, 传输失败时返回错误
	Search(ctx context.Context, query, kind string) ([]*dto.MediaItemDTO, error)

	// PlaylistItems 获取播放列表条目, 过滤私有视频
	// 提供方未配置或失败时返回空列表, 从不返回错误
	PlaylistItems(ctx context.Context, playlistID string) []*dto.MediaItemDTO
}

// mediaService 实现 MediaService 接口
type mediaService struct {
	searcher provider.MediaSearcher
}

// NewMediaService 创建 MediaService 实例
func NewMediaService(searcher provider.MediaSearcher) MediaService {
	return &mediaService{searcher: searcher}
}

// setupCatalog 提供方未配置时返回的固定提示条目
func setupCatalog() []*dto.MediaItemDTO {
	return []*dto.MediaItemDTO{
		{
			ID:           "instruction-placeholder",
			Kind:         provider.KindVideo,
			Title:        "Setup Required: configure a search provider API key",
			ChannelTitle: "System",
			Thumbnail:    "https://placehold.co/600x400/000000/FFF?text=Add+API+Key",
			Description:  "To enable real media search, obtain a YouTube Data API key and add it to the providers section of the config file.",
			PublishedAt:  time.Now().UTC().Format(time.RFC3339),
		},
	}
}

func toItemDTO(item *provider.Item) *dto.MediaItemDTO {
	return &dto.MediaItemDTO{
		ID:           item.ID,
		Kind:         item.Kind,
		Title:        item.Title,
		Thumbnail:    item.Thumbnail,
		ChannelTitle: item.ChannelTitle,
		Description:  item.Description,
		PublishedAt:  item.PublishedAt,
	}
}

// Search 搜索视频或播放列表
func (s *mediaService) Search(ctx context.Context, query, kind string) ([]*dto.MediaItemDTO, error) {
	if !s.searcher.Configured() {
		global.Log().Info("search provider not configured, returning setup catalog",
			zap.String(logger.FieldProvider, "youtube"),
			zap.String(logger.FieldQuery, query))
		return setupCatalog(), nil
	}

	if kind != provider.KindPlaylist {
		kind = provider.KindVideo
	}
	items, err := s.searcher.Search(ctx, query, kind)
	if err != nil {
		global.Log().Error("media search failed",
			zap.String(logger.FieldProvider, "youtube"),
			zap.String(logger.FieldQuery, query),
			zap.Error(err))
		return nil, code.ErrorSearchProvider.WithDetails(err.Error())
	}

	list := make([]*dto.MediaItemDTO, 0, len(items))
	for _, item := range items {
		list = append(list, toItemDTO(item))
	}
	return list, nil
}

// PlaylistItems 获取播放列表条目
func (s *mediaService) PlaylistItems(ctx context.Context, playlistID string) []*dto.MediaItemDTO {
	if !s.searcher.Configured() {
		return []*dto.MediaItemDTO{}
	}

	items, err := s.searcher.PlaylistItems(ctx, playlistID)
	if err != nil {
		global.Log().Warn("playlist items fetch failed, returning empty list",
			zap.String(logger.FieldProvider, "youtube"),
			zap.String("playlist", playlistID),
			zap.Error(err))
		return []*dto.MediaItemDTO{}
	}

	list := make([]*dto.MediaItemDTO, 0, len(items))
	for _, item := range items {
		if item.Title == "Private video" {
			continue
		}
		list = append(list, toItemDTO(item))
	}
	return list
}
