package errors

const (
	CurrentPageInvalidErrorCode = 200_001
	ObjectIDNotFoundErrorCode   = 200_002
	PageSizeInvalidErrorCode    = 200_003
	ResourceNotFoundErrorCode   = 200_004
	OperationUnsupportedCode    = 200_005
	ParentSectionMissingCode    = 200_006
	ItemKindInvalidErrorCode    = 200_007
)

// CurrentPageInvalidError indicates user gives invalid current page when reading a list screen
var CurrentPageInvalidError = new(CurrentPageInvalidErrorCode, "CurrentPageInvalid", "Current page can be only positive integer")

// ObjectIDNotFoundError indicates user gives invalid item ID
var ObjectIDNotFoundError = new(ObjectIDNotFoundErrorCode, "ObjectIDNotFound", "Item with ID %s is not exist")

// PageSizeInvalidError indicates a screen was configured with a non-positive page size
var PageSizeInvalidError = new(PageSizeInvalidErrorCode, "PageSizeInvalid", "Page size can be only positive integer")

// ResourceNotFoundError indicates user asks for a list screen that does not exist
var ResourceNotFoundError = new(ResourceNotFoundErrorCode, "ResourceNotFound", "Resource %s is not exist")

// OperationUnsupportedError indicates the remote API does not offer the operation for this resource
var OperationUnsupportedError = new(OperationUnsupportedCode, "OperationUnsupported", "%s is not supported by resource %s")

// ParentSectionMissingError indicates a nested item cannot be created before its parent section is loaded
var ParentSectionMissingError = new(ParentSectionMissingCode, "ParentSectionMissing", "no parent section found for %s")

// ItemKindInvalidError indicates user gives a section item kind other than service or product
var ItemKindInvalidError = new(ItemKindInvalidErrorCode, "ItemKindInvalid", "Item kind %s is invalid or unsupported")
