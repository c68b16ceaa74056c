package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	sharedError "github.com/dormlife/community-api/internal/shared/error"
	"github.com/go-playground/validator/v10"
)

// fieldLabels names request fields in messages. Keys are wire names, as
// reported once wireName is installed on the engine.
var fieldLabels = map[string]string{
	"email":          "이메일",
	"password":       "비밀번호",
	"oldPassword":    "기존 비밀번호",
	"newPassword":    "새 비밀번호",
	"dormitory_card": "기숙사 카드 이미지",
	"dormitory_code": "기숙사 코드",
	"nickname":       "닉네임",
	"phone_number":   "휴대폰 번호",
	"name":           "이름",
	"birthday":       "생년월일",
	"refreshToken":   "refresh token",
	"title":          "제목",
	"content":        "내용",
	"page":           "페이지",
	"size":           "페이지 크기",
	"pushIds":        "알림 ID",
}

// ToErrorResponse converts gin binding/validator errors into ERROR-001.
// Only the first failing field is reported.
func ToErrorResponse(err error) (*sharedError.ErrorResponse, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return nil, false
	}

	resp := sharedError.ValidationFailed
	resp.Message = getErrorMessage(validationErrors[0])
	return &resp, true
}

func getErrorMessage(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s을(를) 입력해 주세요.", label)
	case "email":
		return "이메일 형식이 올바르지 않습니다."
	case "min":
		if isLength(fe.Kind()) {
			return fmt.Sprintf("%s은(는) 최소 %s자 이상이어야 합니다.", label, fe.Param())
		}
		return fmt.Sprintf("%s은(는) %s 이상이어야 합니다.", label, fe.Param())
	case "max":
		if isLength(fe.Kind()) {
			return fmt.Sprintf("%s은(는) 최대 %s자까지 입력 가능합니다.", label, fe.Param())
		}
		return fmt.Sprintf("%s은(는) %s 이하이어야 합니다.", label, fe.Param())
	case "gt":
		return fmt.Sprintf("%s은(는) %s보다 커야 합니다.", label, fe.Param())
	case "maxbytes":
		return fmt.Sprintf("%s이(가) 너무 깁니다.", label)
	case "phone":
		return "휴대폰 번호 형식이 올바르지 않습니다. (010-XXXX-XXXX)"
	case "pastdate":
		return "날짜가 올바르지 않습니다."
	default:
		return fmt.Sprintf("'%s' 필드가 올바르지 않습니다.", fe.Field())
	}
}

// fieldLabel strips dive indexes (pushIds[0]) before the lookup.
func fieldLabel(field string) string {
	name, _, _ := strings.Cut(field, "[")
	if label, ok := fieldLabels[name]; ok {
		return label
	}
	return field
}

func isLength(kind reflect.Kind) bool {
	return kind == reflect.String
}

// wireName reports fields by their json or form tag so messages and
// fieldLabels agree with what the client sent.
func wireName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return field.Name
}
