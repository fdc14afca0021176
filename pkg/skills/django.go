package skills

// djangoRules match dotted import paths of the Django API reference.
// django/models and django/schemaeditor share a trigger.
func djangoRules() []Rule {
	return []Rule{
		when("django/applications", anyOf("django.apps")),
		when("django/built_in_views", anyOf("django.views.generic", "django.views.View", "django.views.TemplateView")),
		when("django/clickjacking_protection", anyOf("django.middleware.clickjacking")),
		when("django/contrib_packages", anyOf("django.contrib")),
		when("django/databases", anyOf("django.db")),
		when("django/django_admin", anyOf("django.contrib.admin")),
		when("django/django_exceptions", anyOf("django.core.exceptions")),
		when("django/file_handling", anyOf("django.core.files")),
		when("django/forms", anyOf("django.forms")),
		when("django/logging", anyOf("django.utils.log")),
		when("django/middleware", anyOf("django.middleware")),
		when("django/migration_operations", anyOf("django.db.migrations")),
		when("django/models", anyOf("django.db.models")),
		when("django/paginator", anyOf("django.core.paginator")),
		when("django/request_and_response", anyOf("django.http")),
		when("django/schemaeditor", anyOf("django.db.models")),
		when("django/settings", anyOf("django.conf.settings")),
		when("django/signals", anyOf("django.dispatch")),
		when("django/templates", anyOf("django.template")),
		when("django/simpletemplateresponse", anyOf("django.template.response")),
		when("django/unicode_data", anyOf("django.utils.encoding")),
		when("django/django_urls", anyOf("django.urls")),
		when("django/django_utils", anyOf("django.utils")),
		when("django/validators", anyOf("django.core.validators")),
	}
}
