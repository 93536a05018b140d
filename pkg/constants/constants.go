// pkg/constants/constants.go
package constants

//============== EQUIPMENT STATUSES ==============

// Статусы оборудования. Хранятся в БД как строки, движок деривации
// оперирует именно этими значениями.
const (
	StatusAvailable   = "available"
	StatusInUse       = "in-use"
	StatusMaintenance = "maintenance"
	StatusUnavailable = "unavailable"
)

// AllStatuses используется валидатором для проверки входящих значений.
var AllStatuses = []string{
	StatusAvailable,
	StatusInUse,
	StatusMaintenance,
	StatusUnavailable,
}

// LagerLocationName - сентинельное название склада ("домашнее" хранилище).
// Сравнение всегда регистронезависимое.
const LagerLocationName = "lager"

//============== LOG ACTION TYPES ==============

// Типы записей в журнале оборудования.
const (
	ActionCreated        = "created"
	ActionUpdated        = "updated"
	ActionDeleted        = "deleted"
	ActionStatusChange   = "status_change"
	ActionLocationChange = "location_change"
)

//============== USER ROLES ==============

const (
	RoleAdmin      = "admin"
	RoleTechnician = "technician"
	RoleViewer     = "viewer"
)

//============== PERMISSIONS ==============

// Имена прав. Формат: <ресурс>:<действие>.
const (
	PermEquipmentView   = "equipment:view"
	PermEquipmentCreate = "equipment:create"
	PermEquipmentUpdate = "equipment:update"
	PermEquipmentDelete = "equipment:delete"
	PermLogsView        = "logs:view"
	PermDictionaryEdit  = "dictionary:edit"
	PermUsersManage     = "users:manage"
	PermFilesUpload     = "files:upload"
	PermExport          = "export"
)

//============== CACHE KEYS ==============

// Префиксы для ключей в Redis/кеше.
const (
	// Права роли. Формат: role_permissions:<role> -> JSON-массив имен прав.
	CacheKeyRolePermissions = "role_permissions:%s"
)

//============== UPLOAD CONTEXTS ==============

// UploadContext определяет тип для контекстов загрузки файлов.
type UploadContext string

const (
	// UploadContextReferenceImage используется для эталонных фото оборудования.
	UploadContextReferenceImage UploadContext = "reference_image"
)

// String возвращает строковое представление контекста.
func (uc UploadContext) String() string {
	return string(uc)
}
