package server

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"accesslint/internal/catalog"
	"accesslint/internal/store"
)

func registerCriteria(api huma.API) {
	type criteriaQuery struct {
		Category string `query:"category" required:"false" doc:"Filter by topic category"`
		Level    string `query:"level" required:"false" doc:"Filter by conformance level (A, AA, AAA)"`
	}
	huma.Register(api, huma.Operation{
		OperationID: "list-criteria",
		Method:      http.MethodGet,
		Path:        "/criteria",
		Summary:     "List success criteria",
	}, func(ctx context.Context, input *criteriaQuery) (*struct {
		Body []catalog.Criterion `json:"body"`
	}, error) {
		items := catalog.All()
		if input.Category != "" {
			items = catalog.ByCategory(catalog.Category(input.Category))
		}
		if input.Level != "" {
			var filtered []catalog.Criterion
			for _, c := range items {
				if c.Level == catalog.Level(input.Level) {
					filtered = append(filtered, c)
				}
			}
			items = filtered
		}
		return &struct {
			Body []catalog.Criterion `json:"body"`
		}{Body: items}, nil
	})

	type criterionPath struct {
		ID string `path:"id" doc:"Dotted criterion id, e.g. 1.4.3"`
	}
	huma.Register(api, huma.Operation{
		OperationID: "get-criterion",
		Method:      http.MethodGet,
		Path:        "/criteria/{id}",
		Summary:     "Get one success criterion",
	}, func(ctx context.Context, input *criterionPath) (*struct {
		Body catalog.Criterion `json:"body"`
	}, error) {
		c, ok := catalog.Get(input.ID)
		if !ok {
			return nil, newAPIError(http.StatusNotFound, "not_found", "unknown criterion "+input.ID, nil)
		}
		return &struct {
			Body catalog.Criterion `json:"body"`
		}{Body: c}, nil
	})
}

func registerAudits(api huma.API, svc *Service) {
	type auditsQuery struct {
		Operation string `query:"operation" required:"false" doc:"Filter by operation id"`
		Limit     int    `query:"limit" required:"false" minimum:"0" maximum:"500" doc:"Maximum records to return"`
	}
	huma.Register(api, huma.Operation{
		OperationID: "list-audits",
		Method:      http.MethodGet,
		Path:        "/audits",
		Summary:     "List recent evaluation audits",
	}, func(ctx context.Context, input *auditsQuery) (*struct {
		Body []store.Audit `json:"body"`
	}, error) {
		if svc.Store == nil {
			return nil, newAPIError(http.StatusNotFound, "not_found", "auditing is disabled", nil)
		}
		audits, err := svc.Store.LatestAudits(ctx, input.Operation, input.Limit)
		if err != nil {
			return nil, handleError(err)
		}
		return &struct {
			Body []store.Audit `json:"body"`
		}{Body: audits}, nil
	})

	type auditPath struct {
		ID string `path:"id" doc:"Audit record id"`
	}
	huma.Register(api, huma.Operation{
		OperationID: "get-audit",
		Method:      http.MethodGet,
		Path:        "/audits/{id}",
		Summary:     "Get one evaluation audit",
	}, func(ctx context.Context, input *auditPath) (*struct {
		Body store.Audit `json:"body"`
	}, error) {
		if svc.Store == nil {
			return nil, newAPIError(http.StatusNotFound, "not_found", "auditing is disabled", nil)
		}
		a, err := svc.Store.GetAudit(ctx, input.ID)
		if err != nil {
			return nil, handleError(err)
		}
		return &struct {
			Body store.Audit `json:"body"`
		}{Body: a}, nil
	})
}
