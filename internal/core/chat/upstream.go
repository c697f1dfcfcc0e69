package chat

import (
	"context"

	"recipe-chat/internal/core/recipe"
	"recipe-chat/internal/pkg/common"

	"go.uber.org/zap"
)

// 上游失敗在此統一降級為空結果：呼叫端無法區分「查無資料」與「上游錯誤」

func (s *Service) searchByName(ctx context.Context, query string) []recipe.Recipe {
	results, err := s.recipes.SearchByName(ctx, query)
	if err != nil {
		logDegraded(ctx, "search_by_name", query, err)
		return nil
	}
	return results
}

func (s *Service) random(ctx context.Context) recipe.Recipe {
	r, err := s.recipes.Random(ctx)
	if err != nil {
		logDegraded(ctx, "random", "", err)
		return nil
	}
	return r
}

func (s *Service) lookupByID(ctx context.Context, id string) recipe.Recipe {
	r, err := s.recipes.LookupByID(ctx, id)
	if err != nil {
		logDegraded(ctx, "lookup_by_id", id, err)
		return nil
	}
	return r
}

func (s *Service) filterByArea(ctx context.Context, area string) []recipe.Recipe {
	results, err := s.recipes.FilterByArea(ctx, area)
	if err != nil {
		logDegraded(ctx, "filter_by_area", area, err)
		return nil
	}
	return results
}

func logDegraded(ctx context.Context, op, arg string, err error) {
	common.LogError("上游食譜 API 失敗，改用預設結果",
		zap.String("request_id", common.RequestIDFromContext(ctx)),
		zap.String("operation", op),
		zap.String("argument", arg),
		zap.Error(common.ErrUpstream.Wrap(err)),
	)
}
