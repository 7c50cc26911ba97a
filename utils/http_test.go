package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitWriteJSONWithStatus(t *testing.T) {

	Convey("Writes the resource as JSON with the supplied status", t, func() {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test", nil)

		WriteJSONWithStatus(w, req, NewMessageResponse("error generating remittance"), http.StatusInternalServerError)

		So(w.Code, ShouldEqual, http.StatusInternalServerError)
		So(w.Header().Get("Content-Type"), ShouldEqual, "application/json")
		So(w.Body.String(), ShouldContainSubstring, `"message":"error generating remittance"`)
	})
}
