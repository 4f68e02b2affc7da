package survival

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/biodemo/biodemo/internal/adapters/repository"
	"github.com/biodemo/biodemo/internal/domain/model"
	"github.com/gorilla/mux"
	. "github.com/smartystreets/goconvey/convey"
)

type brokenStudy struct{}

func (brokenStudy) Study(context.Context) (model.Study, error) {
	return model.Study{}, errors.New("unavailable")
}

func TestSurvivalHandler(t *testing.T) {
	Convey("Given the survival service", t, func() {
		ctx := context.Background()
		r := mux.NewRouter()
		NewServer(repository.NewPatientCatalog(), nil).Register(ctx, r)

		Convey("When requesting the page", func() {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

			Convey("Then it should serve the HTML document", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldContainSubstring, "text/html")
				So(w.Body.String(), ShouldContainSubstring, "Survival Analysis")
				So(w.Body.String(), ShouldContainSubstring, "/api/results")
			})
		})

		Convey("When requesting the results", func() {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/results", http.NoBody))

			Convey("Then it should return the fixed envelope", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldEqual, "application/json; charset=utf-8")

				var study model.Study
				So(json.Unmarshal(w.Body.Bytes(), &study), ShouldBeNil)
				So(study.App, ShouldEqual, "Demo 2 - Survival Analysis")
				So(study.Version, ShouldEqual, "1.0.0")
				So(len(study.Results), ShouldEqual, 5)
				So(study.Results[0], ShouldResemble, model.Patient{
					Patient: "Patient 001", Survival: 365, Status: model.StatusAlive, Treatment: "Chemotherapy",
				})
				So(study.Results[4], ShouldResemble, model.Patient{
					Patient: "Patient 005", Survival: 270, Status: model.StatusDeceased, Treatment: "Chemotherapy",
				})
			})

			Convey("And the top-level keys should be exactly app, version and results", func() {
				var raw map[string]json.RawMessage
				So(json.Unmarshal(w.Body.Bytes(), &raw), ShouldBeNil)
				So(len(raw), ShouldEqual, 3)
				So(raw, ShouldContainKey, "app")
				So(raw, ShouldContainKey, "version")
				So(raw, ShouldContainKey, "results")
			})
		})

		Convey("When requesting an unknown path", func() {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", http.NoBody))

			Convey("Then it should return 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})

	Convey("Given a survival service whose study cannot be read", t, func() {
		r := mux.NewRouter()
		NewServer(brokenStudy{}, nil).Register(context.Background(), r)

		Convey("When requesting the results", func() {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/results", http.NoBody))

			Convey("Then it should return 500", func() {
				So(w.Code, ShouldEqual, http.StatusInternalServerError)
			})
		})
	})
}

func TestSurvivalHandlerWithNilRouter(t *testing.T) {
	Convey("Given a nil router", t, func() {
		Convey("Then registering should panic", func() {
			So(func() {
				NewServer(repository.NewPatientCatalog(), nil).Register(context.Background(), nil)
			}, ShouldPanic)
		})
	})
}
