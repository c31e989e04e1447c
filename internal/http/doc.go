// Package http exposes the portal content as a read-only JSON API built on chi.
//
// Routes mount under /api:
//   - Lists: /api/{domain}?page=&pageSize=&search=&parentId=&locale=
//     (parentId is rejected with 400 on domains without a parent relation)
//   - Single entities: /api/{domain}/{id}, /api/{domain}/slug/{slug}
//   - Breadcrumbs: /api/{domain}/{id}/context for hierarchy domains
//
// /healthz reports liveness. When a locale is requested, responses carry a display
// projection with the bilingual fields resolved to that locale.
package http
