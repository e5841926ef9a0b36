package notice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixturePage = `<html><body><table>
<tr>
	<td class="b-num-box"> 105 </td>
	<td><span class="b-cate">장학</span></td>
	<td><div class="b-title-box">
		<a href="?mode=view&articleNo=105" title="[학사팀] 수강신청 안내 자세히 보기">수강신청 안내</a>
	</div></td>
	<td><span class="b-writer">학사팀</span></td>
	<td><span class="b-date">2023-03-02</span></td>
</tr>
<tr>
	<td class="b-num-box"> 104 </td>
	<td><span class="b-cate">학사</span></td>
	<td><div class="b-title-box">
		<a href="?mode=view&articleNo=104" title="(재공지)등록금 납부 안내 자세히 보기">등록금 납부 안내</a>
	</div></td>
	<td><span class="b-writer">재무팀</span></td>
	<td><span class="b-date">2023-03-01</span></td>
</tr>
<tr>
	<td class="b-num-box"> 공지 </td>
	<td><span class="b-cate">고정</span></td>
	<td><div class="b-title-box">
		<a href="?mode=view&articleNo=1" title="고정 공지 자세히 보기">고정 공지</a>
	</div></td>
	<td><span class="b-writer">관리자</span></td>
	<td><span class="b-date">2023-01-01</span></td>
</tr>
</table></body></html>`

const baseLink = "https://www.ajou.ac.kr/kr/ajou/notice.do"

func TestParse(t *testing.T) {
	notices, err := Parse(strings.NewReader(fixturePage), baseLink)
	require.NoError(t, err)

	// the pinned row has no numeric id, it must be dropped, and the
	// remaining rows must come back oldest first
	require.Len(t, notices, 2)
	require.Equal(t, 104, notices[0].Id)
	require.Equal(t, 105, notices[1].Id)

	require.Equal(t, "등록금 납부 안내", notices[0].Title)
	require.Equal(t, "재무팀", notices[0].Writer)
	require.Equal(t, "학사", notices[0].Category)
	require.Equal(t, "2023-03-01", notices[0].Date)
	require.Equal(t, baseLink+"?mode=view&articleNo=104", notices[0].Link)

	// bracketed writer duplicate stripped out of the title
	require.Equal(t, "수강신청 안내", notices[1].Title)
}

func TestParseDropsRowsMissingRequiredFields(t *testing.T) {
	page := `<html><body><table>
	<tr>
		<td class="b-num-box">50</td>
		<td><span class="b-cate">학사</span></td>
		<td><div class="b-title-box"><span>no anchor here</span></div></td>
		<td><span class="b-writer">학사팀</span></td>
		<td><span class="b-date">2023-02-01</span></td>
	</tr>
	</table></body></html>`

	notices, err := Parse(strings.NewReader(page), baseLink)
	require.NoError(t, err)
	require.Empty(t, notices)
}

func TestCleanTitle(t *testing.T) {
	testCases := []struct {
		title    string
		writer   string
		expected string
	}{
		{"[Writer] Actual Title 자세히 보기", "Writer", "Actual Title"},
		{"(재공지)장학금 신청 자세히 보기", "학생지원팀", "장학금 신청"},
		{"평범한 제목", "아무개", "평범한 제목"},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, CleanTitle(test.title, test.writer))
	}
}
