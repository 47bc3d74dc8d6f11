package i18n

import "golang.org/x/text/language"

var supported = []language.Tag{
	language.Vietnamese, // default
	language.English,
	language.Chinese,
	language.Japanese,
}

var matcher = language.NewMatcher(supported)

var messages = map[string]map[string]string{
	"vi": {
		"auth.INVALID_CREDENTIAL": "Email hoặc mật khẩu không đúng",
		"auth.EMAIL_IN_USE":       "Email đã được sử dụng",
		"auth.WEAK_PASSWORD":      "Mật khẩu quá yếu",
		"auth.USER_NOT_FOUND":     "Không tìm thấy tài khoản",
		"cart.empty":              "Giỏ hàng trống, vui lòng thêm món",
		"order.created":           "Đặt món thành công!",
		"session.required":        "Vui lòng đăng nhập để đặt món",
	},
	"en": {
		"auth.INVALID_CREDENTIAL": "Incorrect email or password",
		"auth.EMAIL_IN_USE":       "Email is already in use",
		"auth.WEAK_PASSWORD":      "Password is too weak",
		"auth.USER_NOT_FOUND":     "Account not found",
		"cart.empty":              "Your cart is empty, please add a dish",
		"order.created":           "Order placed successfully!",
		"session.required":        "Please sign in to order",
	},
	"zh": {
		"auth.INVALID_CREDENTIAL": "邮箱或密码不正确",
		"auth.EMAIL_IN_USE":       "邮箱已被使用",
		"auth.WEAK_PASSWORD":      "密码强度不足",
		"auth.USER_NOT_FOUND":     "未找到账户",
		"cart.empty":              "购物车是空的，请添加菜品",
		"order.created":           "下单成功！",
		"session.required":        "请登录后下单",
	},
	"ja": {
		"auth.INVALID_CREDENTIAL": "メールアドレスまたはパスワードが正しくありません",
		"auth.EMAIL_IN_USE":       "このメールアドレスは既に使用されています",
		"auth.WEAK_PASSWORD":      "パスワードが弱すぎます",
		"auth.USER_NOT_FOUND":     "アカウントが見つかりません",
		"cart.empty":              "カートが空です。料理を追加してください",
		"order.created":           "注文が完了しました！",
		"session.required":        "注文するにはサインインしてください",
	},
}

// Match resolves a requested language code to a supported one, falling
// back to Vietnamese.
func Match(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return "vi"
	}
	matched, _, confidence := matcher.Match(tag)
	if confidence == language.No {
		return "vi"
	}
	base, _ := matched.Base()
	if _, ok := messages[base.String()]; !ok {
		return "vi"
	}
	return base.String()
}

// T returns the message for key in the given language, falling back to
// Vietnamese and then to the key itself.
func T(lang, key string) string {
	lang = Match(lang)
	if msg, ok := messages[lang][key]; ok {
		return msg
	}
	if msg, ok := messages["vi"][key]; ok {
		return msg
	}
	return key
}
