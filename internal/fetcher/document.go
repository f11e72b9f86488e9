package fetcher

import (
	"context"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	apperrors "github.com/darkkaiser/ipo-notify/internal/pkg/errors"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/htmlindex"
)

// FetchHTMLDocument 지정된 URL의 HTML 문서를 가져와 goquery.Document로 파싱합니다.
//
// encoding이 비어 있으면 Content-Type 헤더와 <meta> 태그로 문자 인코딩을 판별하고,
// 지정된 경우(예: "euc-kr") 해당 인코딩으로 강제 변환합니다.
func FetchHTMLDocument(ctx context.Context, f Fetcher, url string, encoding string) (*goquery.Document, error) {
	resp, err := Get(ctx, f, url)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Unavailable, fmt.Sprintf("HTML 페이지(%s) 요청에 실패했습니다", url))
	}
	defer resp.Body.Close()

	utf8Reader, err := newUTF8Reader(resp.Body, resp.Header.Get("Content-Type"), encoding)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ExecutionFailed, fmt.Sprintf("페이지(%s)의 인코딩 변환에 실패했습니다", url))
	}

	doc, err := goquery.NewDocumentFromReader(utf8Reader)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ParsingFailed, fmt.Sprintf("불러온 페이지(%s)의 HTML 파싱에 실패했습니다", url))
	}

	return doc, nil
}

func newUTF8Reader(r io.Reader, contentType, encoding string) (io.Reader, error) {
	if encoding == "" {
		return charset.NewReader(r, contentType)
	}

	enc, err := htmlindex.Get(encoding)
	if err != nil {
		return nil, err
	}
	return enc.NewDecoder().Reader(r), nil
}
