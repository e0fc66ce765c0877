package constants

// 访问日志动作常量
const (
	AccessActionLoginAttempt  = "login_attempt"
	AccessActionLoginLocked   = "login_attempt_locked"
	AccessActionLoginInactive = "login_attempt_inactive"
	AccessActionLoginSuccess  = "login_success"
	AccessActionLoginFailed   = "login_failed"
	AccessActionLogout        = "logout"
	AccessActionPasswordReset = "password_changed"
)

// 预约状态常量
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCanceled  = "canceled"
)

// 队列名称常量
const (
	QueueDefault = "default"
)

// 异步任务类型常量
const (
	TaskBookingNotify = "booking:notify"
)

// 验证码场景常量
const (
	CaptchaSceneAdminLogin = "admin_login"
)
