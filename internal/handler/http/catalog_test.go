package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/monibBormon/carhouse/internal/handler/http/mocks"
	"github.com/monibBormon/carhouse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCatalogHandler_ListCars(t *testing.T) {
	cars := []models.Car{
		{Name: "BMW X5", Price: 65000},
		{Name: "Audi Q7", Price: 72000},
	}

	tests := []struct {
		name           string
		target         string
		setup          func(t *testing.T) *mocks.MockCatalogService
		wantStatusCode int
		wantBody       *listCarsResp
	}{
		{
			name:   "full_list_return_200",
			target: "/products",
			setup: func(t *testing.T) *mocks.MockCatalogService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCatalogService(ctrl)
				svcMock.EXPECT().List(gomock.Any(), int64(0), int64(0)).Return(cars, int64(2), nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusOK,
			wantBody:       &listCarsResp{Count: 2, Result: cars},
		},
		{
			name:   "paginated_count_keeps_total_return_200",
			target: "/products?page=1&size=1",
			setup: func(t *testing.T) *mocks.MockCatalogService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCatalogService(ctrl)
				svcMock.EXPECT().List(gomock.Any(), int64(1), int64(1)).Return(cars[1:], int64(2), nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusOK,
			wantBody:       &listCarsResp{Count: 2, Result: cars[1:]},
		},
		{
			name:   "invalid_page_return_400",
			target: "/products?page=x&size=1",
			setup: func(t *testing.T) *mocks.MockCatalogService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCatalogService(ctrl)
				svcMock.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:   "negative_size_return_400",
			target: "/products?size=-2",
			setup: func(t *testing.T) *mocks.MockCatalogService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCatalogService(ctrl)
				svcMock.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:   "internal_error_return_500",
			target: "/products",
			setup: func(t *testing.T) *mocks.MockCatalogService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCatalogService(ctrl)
				svcMock.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, int64(0), models.ErrInternalError).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			handler := NewCatalogHandler(tt.setup(t))
			h := handler.ListCars()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)

			if tt.wantBody != nil {
				resBody, err := io.ReadAll(res.Body)
				require.NoError(t, err)

				var got listCarsResp
				require.NoError(t, json.Unmarshal(resBody, &got))

				if diff := cmp.Diff(*tt.wantBody, got); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestCatalogHandler_GetCar(t *testing.T) {
	carID := primitive.NewObjectID().Hex()

	tests := []struct {
		name           string
		id             string
		setup          func(t *testing.T) *mocks.MockCatalogService
		wantStatusCode int
	}{
		{
			name: "valid_request_return_200",
			id:   carID,
			setup: func(t *testing.T) *mocks.MockCatalogService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCatalogService(ctrl)
				svcMock.EXPECT().Get(gomock.Any(), carID).Return(&models.Car{Name: "BMW X5"}, nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "invalid_id_return_400",
			id:   "not-an-id",
			setup: func(t *testing.T) *mocks.MockCatalogService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCatalogService(ctrl)
				svcMock.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, models.ErrInvalidID).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "unknown_car_return_404",
			id:   carID,
			setup: func(t *testing.T) *mocks.MockCatalogService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCatalogService(ctrl)
				svcMock.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, models.ErrDataNotFound).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/products/"+tt.id, nil)
			w := httptest.NewRecorder()

			router := chi.NewRouter()
			handler := NewCatalogHandler(tt.setup(t))
			router.Get("/products/{id}", handler.GetCar())
			router.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)
		})
	}
}
