package mhaksa

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ajou-backend/lib/telemetry"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
	"VariableList": {"ErrorMsg": "", "ErrorCode": ""},
	"DatasetList": {"DS_COUR120": [
		{
			"sbjtCd": "CSE3030",
			"sbjtId": "20231-CSE3030-001",
			"sbjtKorNm": "운영체제",
			"sbjtEngNm": "Operating Systems",
			"maLecturerEmplNm": "홍길동",
			"submattFgNm": "전공필수",
			"pnt": 3.0,
			"yy": "2023",
			"rowStatus": 0
		},
		{
			"sbjtCd": "CSE2010",
			"sbjtId": "20231-CSE2010-001",
			"sbjtKorNm": "자료구조",
			"sbjtEngNm": "Data Structures",
			"maLecturerEmplNm": "김철수",
			"submattFgNm": "전공필수",
			"pnt": 3.0,
			"yy": "2023",
			"rowStatus": 0
		}
	]}
}`

func newTestClient(serverUrl string) *Client {
	return NewClient(ClientOptions{
		Endpoint: serverUrl,
		Year:     "2023",
		Term:     "U0002001",
	})
}

func TestFetchCourses(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:mhaksa")
	defer cleanup()

	var gotCookie string
	var gotPayload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		_ = json.NewDecoder(r.Body).Decode(&gotPayload)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	courses, err := client.FetchCourses(context.Background(), Categories[0], "token-123")
	require.NoError(t, err)
	require.Len(t, courses, 2)

	want := Course{
		SubjectCode:        "CSE3030",
		SubjectId:          "20231-CSE3030-001",
		SubjectKoreanName:  "운영체제",
		SubjectEnglishName: "Operating Systems",
		MainLecturerName:   "홍길동",
		CourseTypeKorean:   "전공필수",
		CreditPoints:       3.0,
		Year:               "2023",
	}
	if diff := cmp.Diff(want, courses[0]); diff != "" {
		t.Fatalf("decoded course mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "JSESSIONID=token-123;", gotCookie)

	param := gotPayload["param"].(map[string]any)
	require.Equal(t, "U0209001", param["strSubmattFg"])
	require.Equal(t, "2023", param["strYy"])
}

func TestFetchCoursesNotJson(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:mhaksa")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>session expired</html>"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.FetchCourses(context.Background(), Categories[0], "stale")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestFetchCoursesPortalError(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:mhaksa")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"VariableList": {"ErrorMsg": "no session", "ErrorCode": "500"}, "DatasetList": {"DS_COUR120": []}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.FetchCourses(context.Background(), Categories[1], "stale")
	require.ErrorIs(t, err, ErrUnavailable)
}
