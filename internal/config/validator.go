package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/ipo-notify/internal/pkg/errors"
	"github.com/darkkaiser/ipo-notify/pkg/cronx"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/encoding/htmlindex"
)

var validate = newValidator()

// newValidator 새로운 Validator 인스턴스를 생성하고 커스텀 유효성 검사 함수를 등록합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 검증 에러 메시지에 Go 구조체 필드명 대신 JSON 키 이름을 보여줍니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("cron_spec", validateCronSpec); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'cron_spec' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}
	if err := v.RegisterValidation("html_encoding", validateHTMLEncoding); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'html_encoding' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	return v
}

func validateCronSpec(fl validator.FieldLevel) bool {
	return cronx.Validate(fl.Field().String()) == nil
}

// validateHTMLEncoding WHATWG Encoding 표준의 이름(예: "euc-kr", "utf-8")인지 검사합니다.
func validateHTMLEncoding(fl validator.FieldLevel) bool {
	_, err := htmlindex.Get(fl.Field().String())
	return err == nil
}

// checkStruct 구조체의 유효성을 검사하고, 첫 번째 위반 항목을 설정 키 경로와 함께 보고합니다.
func checkStruct(v *validator.Validate, s any, contextName string) error {
	if err := v.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			firstErr := validationErrors[0]

			// "AppConfig.source.url" -> "source.url"
			key := firstErr.Namespace()
			if _, after, found := strings.Cut(key, "."); found {
				key = after
			}

			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s='%v' (조건: %s)", contextName, key, firstErr.Value(), conditionOf(firstErr)))
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
	}
	return nil
}

func conditionOf(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
