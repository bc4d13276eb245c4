// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package emperor provides the HTTP interface for the emperor reference dataset.

Every endpoint is a public, read-only query. Collection-returning queries answer
200 with an empty list when nothing matches; only single-record lookups answer 404.

The handler serves as the bridge between RESTful requests and the [Service] layer.
*/
package emperor

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/imperium/internal/platform/request"
	"github.com/taibuivan/imperium/internal/platform/respond"
	"github.com/taibuivan/imperium/pkg/pagination"
	"github.com/taibuivan/imperium/pkg/slice"
)

// # Response Models

// Response is the JSON representation of an [Emperor].
//
// The successor is reported by name only; the nested record is never serialised.
type Response struct {
	ID string `json:"id"`
	*Emperor
	ReignDuration  int    `json:"reign_duration"`
	AgeAtDeath     int    `json:"age_at_death"`
	AgeAtAccession int    `json:"age_at_accession"`
	SuccessorName  string `json:"successor,omitempty"`
}

// NewResponse builds the JSON view of record.
func NewResponse(record *Emperor) Response {
	return Response{
		ID:             record.ID(),
		Emperor:        record,
		ReignDuration:  record.ReignDuration(),
		AgeAtDeath:     record.AgeAtDeath(),
		AgeAtAccession: record.AgeAtAccession(),
		SuccessorName:  record.SuccessorName(),
	}
}

// DynastyMembers is the response for a dynasty lookup.
type DynastyMembers struct {
	Dynasty  string     `json:"dynasty"`
	Emperors []Response `json:"emperors"`
}

// SignMembers is one zodiac group in the response for GET /zodiac.
type SignMembers struct {
	Sign     string   `json:"sign"`
	Emperors []string `json:"emperors"`
}

// # Handler

// Handler implements the HTTP layer for emperor queries.
type Handler struct {
	service *Service
}

// NewHandler constructs a new emperor [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the emperor domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/summary", handler.summary)

	// # Emperors
	router.Route("/emperors", func(emperorRoute chi.Router) {
		emperorRoute.Get("/", handler.list)
		emperorRoute.Get("/search", handler.search)
		emperorRoute.Get("/by-year/{year}", handler.byYear)
		emperorRoute.Get("/by-period", handler.byPeriod)
		emperorRoute.Get("/by-wife", handler.byWife)
		emperorRoute.Get("/by-cause", handler.byCause)
		emperorRoute.Get("/by-zodiac/{sign}", handler.byZodiac)
		emperorRoute.Get("/{id}", handler.get)
		emperorRoute.Get("/{id}/profile", handler.profile)
	})

	// # Dynasties and Signs
	router.Get("/dynasties", handler.listDynasties)
	router.Get("/dynasties/{slug}/emperors", handler.dynastyMembers)
	router.Get("/zodiac", handler.zodiac)

	// # Rankings
	router.Get("/rankings/{metric}", handler.ranking)

	return router
}

/*
GET /api/v1/summary.

Response:
  - 200: Summary: Record count and dynasty labels
*/
func (handler *Handler) summary(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Summary())
}

/*
GET /api/v1/emperors.

Request:
  - page, limit: int (query)

Response:
  - 200: []Response: One page in chronological order
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	records, total := handler.service.List(params)

	respond.Paginated(writer, toResponses(records), pagination.NewMeta(params.Page, params.Limit, total))
}

/*
GET /api/v1/emperors/{id}.

Response:
  - 200: Response
  - 400: Malformed id
  - 404: Unknown id
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.service.Get(requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, NewResponse(record))
}

/*
GET /api/v1/emperors/{id}/profile.

Description: Returns the canonical text profile produced by [Emperor.Render].

Response:
  - 200: text/plain
  - 404: Unknown id
*/
func (handler *Handler) profile(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.service.Get(requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Text(writer, record.Render())
}

/*
GET /api/v1/emperors/search?name=.

Response:
  - 200: Response: First match in chronological order
  - 400: Missing name
  - 404: No match
*/
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.service.Search(requestutil.Query(request, FieldName))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, NewResponse(record))
}

/*
GET /api/v1/emperors/by-year/{year}.

Request:
  - year: int (negative for BCE)

Response:
  - 200: []Response (possibly empty)
  - 400: Non-integer year
*/
func (handler *Handler) byYear(writer http.ResponseWriter, request *http.Request) {
	year, err := requestutil.IntParam(request, FieldYear)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, toResponses(handler.service.ByYear(year)))
}

/*
GET /api/v1/emperors/by-period?start=&end=.

Response:
  - 200: []Response: Reigns overlapping the window
  - 400: Missing, malformed or inverted bounds
*/
func (handler *Handler) byPeriod(writer http.ResponseWriter, request *http.Request) {
	start, err := requestutil.RequiredIntQuery(request, FieldStart)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	end, err := requestutil.RequiredIntQuery(request, FieldEnd)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	records, err := handler.service.ByPeriod(start, end)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, toResponses(records))
}

/*
GET /api/v1/emperors/by-wife?name=.

Response:
  - 200: []Response (each emperor at most once)
  - 400: Missing name
*/
func (handler *Handler) byWife(writer http.ResponseWriter, request *http.Request) {
	records, err := handler.service.ByWife(requestutil.Query(request, FieldName))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, toResponses(records))
}

/*
GET /api/v1/emperors/by-cause?q=.

Response:
  - 200: []Response
  - 400: Missing q
*/
func (handler *Handler) byCause(writer http.ResponseWriter, request *http.Request) {
	records, err := handler.service.ByCauseOfDeath(requestutil.Query(request, FieldQuery))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, toResponses(records))
}

/*
GET /api/v1/emperors/by-zodiac/{sign}.

Response:
  - 200: []Response (exact, case-sensitive sign match)
*/
func (handler *Handler) byZodiac(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, toResponses(handler.service.ByZodiac(requestutil.Param(request, "sign"))))
}

/*
GET /api/v1/dynasties.

Response:
  - 200: []DynastySummary sorted by name
*/
func (handler *Handler) listDynasties(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Dynasties())
}

/*
GET /api/v1/dynasties/{slug}/emperors.

Response:
  - 200: DynastyMembers
  - 404: Unknown dynasty slug
*/
func (handler *Handler) dynastyMembers(writer http.ResponseWriter, request *http.Request) {
	label, records, err := handler.service.ByDynastySlug(requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, DynastyMembers{Dynasty: label, Emperors: toResponses(records)})
}

/*
GET /api/v1/zodiac.

Response:
  - 200: []SignMembers sorted by sign
*/
func (handler *Handler) zodiac(writer http.ResponseWriter, request *http.Request) {
	groups := slice.Map(handler.service.ZodiacGroups(), func(group SignGroup) SignMembers {
		return SignMembers{Sign: group.Sign, Emperors: names(group.Emperors)}
	})

	respond.OK(writer, groups)
}

/*
GET /api/v1/rankings/{metric}?n=.

Request:
  - metric: longest-reign | shortest-reign | oldest-at-death | youngest-at-accession | most-achievements
  - n: int (query, default 1, 0..100)

Response:
  - 200: []Response
  - 400: Unknown metric or invalid n
*/
func (handler *Handler) ranking(writer http.ResponseWriter, request *http.Request) {
	n, err := requestutil.IntQuery(request, FieldCount, DefaultRankingSize)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	records, err := handler.service.Ranking(Metric(requestutil.Param(request, FieldMetric)), n)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, toResponses(records))
}

func toResponses(records []*Emperor) []Response {
	responses := slice.Map(records, NewResponse)
	if responses == nil {
		return []Response{}
	}
	return responses
}

func names(records []*Emperor) []string {
	return slice.Map(records, func(record *Emperor) string { return record.Name })
}
